// Package scene describes what gets drawn: a camera, a projection and an
// ordered list of drawable objects.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera positions the viewer. The view matrix is derived on demand rather
// than stored, so moving the eye can never leave a stale matrix behind.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// ViewMatrix returns the look-at transform for the camera's current state.
// It is a pure function of the three fields.
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection holds the perspective parameters fixed at startup. The window
// is not resizable, so the aspect ratio never changes after creation.
type Projection struct {
	FOVDegrees float32
	Aspect     float32
	Near       float32
	Far        float32
}

// Matrix returns the perspective transform for the projection parameters.
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOVDegrees), p.Aspect, p.Near, p.Far)
}
