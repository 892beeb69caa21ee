package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-scene/geometry"
	"github.com/toxichemicals/GO/holy-scene/glcheck"
	"github.com/toxichemicals/GO/holy-scene/shader"
)

// Uniform names every scene program exposes. Programs drawing segmented
// objects must expose the color uniform as well.
const (
	UniformMVP   = "u_MVP"
	UniformColor = "u_Color"
)

// Segment is a run of vertices drawn separately with its own color. The
// axes object uses one segment per axis.
type Segment struct {
	First int32
	Count int32
	Color mgl32.Vec4
}

// Object pairs uploaded geometry with the program and model transform that
// draw it. Objects may share a program. When Segments is empty the whole
// mesh is drawn in one call; otherwise each segment is drawn on its own
// with its color uploaded first.
type Object struct {
	Name     string
	Mesh     *geometry.Mesh
	Program  *shader.Program
	Model    mgl32.Mat4
	Segments []Segment
}

// Scene is an ordered list of objects viewed through one camera and one
// projection. Draw renders the objects in list order, so the scene doubles
// as the frame's draw list.
type Scene struct {
	Camera     Camera
	Projection Projection
	ClearColor mgl32.Vec4
	Objects    []*Object
}

// Draw renders one frame: it clears the framebuffer, then draws every
// object with a combined transform rebuilt from the camera's current state.
func (s *Scene) Draw() {
	gl.ClearColor(s.ClearColor.X(), s.ClearColor.Y(), s.ClearColor.Z(), s.ClearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProjection := s.Projection.Matrix().Mul4(s.Camera.ViewMatrix())

	for _, object := range s.Objects {
		mvp := viewProjection.Mul4(object.Model)

		object.Program.Use()
		object.Program.SetMat4(UniformMVP, mvp)
		object.Mesh.Bind()

		if len(object.Segments) == 0 {
			object.Mesh.Draw()
		} else {
			for _, segment := range object.Segments {
				object.Program.SetVec4(UniformColor, segment.Color)
				object.Mesh.DrawRange(segment.First, segment.Count)
			}
		}

		object.Mesh.Unbind()
		glcheck.Check("draw " + object.Name)
	}
}
