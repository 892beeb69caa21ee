// Package geometry holds the scene's static vertex data and uploads it into
// GPU buffers. Every mesh carries a single vec3 position attribute; color is
// the shaders' business.
package geometry

// Cube returns the corner positions and triangle indices of a unit cube
// centered on the origin. The 8 corners are shared between faces, so the
// index list carries all 12 triangles.
func Cube() (positions []float32, indices []uint32) {
	positions = []float32{
		// Front face
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
		// Back face
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
	}
	indices = []uint32{
		// Front
		0, 1, 2, 2, 3, 0,
		// Back
		4, 5, 6, 6, 7, 4,
		// Left
		0, 3, 7, 7, 4, 0,
		// Right
		1, 2, 6, 6, 5, 1,
		// Top
		3, 2, 6, 6, 7, 3,
		// Bottom
		0, 1, 5, 5, 4, 0,
	}
	return positions, indices
}

// Pyramid returns the positions and triangle indices of a square-based
// pyramid sitting on the y=0 plane with its apex at (0, 1, 0).
func Pyramid() (positions []float32, indices []uint32) {
	positions = []float32{
		// Base
		-0.5, 0.0, -0.5,
		0.5, 0.0, -0.5,
		0.5, 0.0, 0.5,
		-0.5, 0.0, 0.5,
		// Apex
		0.0, 1.0, 0.0,
	}
	indices = []uint32{
		// Base
		0, 1, 2, 2, 3, 0,
		// Sides
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}
	return positions, indices
}

// Axes returns three origin-anchored line segments of length 3 along +X, +Y
// and +Z, as six unindexed vertices drawn two at a time.
func Axes() []float32 {
	return []float32{
		// X axis
		0.0, 0.0, 0.0,
		3.0, 0.0, 0.0,
		// Y axis
		0.0, 0.0, 0.0,
		0.0, 3.0, 0.0,
		// Z axis
		0.0, 0.0, 0.0,
		0.0, 0.0, 3.0,
	}
}
