package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-scene/core"
	"github.com/toxichemicals/GO/holy-scene/geometry"
	"github.com/toxichemicals/GO/holy-scene/scene"
	"github.com/toxichemicals/GO/holy-scene/shader"
)

// Window and camera constants
const (
	windowWidth  = 1920
	windowHeight = 1080
	windowTitle  = "3D Scene"

	cameraStep = 0.5
)

// The two shader files shipped with the program, relative to the working
// directory.
const (
	cubeShaderPath = "res/shaders/Cube.shader"
	axesShaderPath = "res/shaders/Axes.shader"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
}

// run builds the window and the scene, then drives the render loop until a
// close is requested. It returns nil on a clean close or the first startup
// error; its defers release whatever was created before the error.
func run() error {
	window, err := core.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	world, release, err := buildScene(window.Aspect())
	if err != nil {
		return err
	}
	defer release()

	window.SetKeyCallback(func(key glfw.Key, action glfw.Action) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			window.RequestClose()
			return
		}
		moveCamera(&world.Camera, key)
	})

	log.Println("Scene initialized. Starting render loop...")

	frames := 0
	fpsLastUpdate := time.Now()

	for !window.ShouldClose() {
		world.Draw()
		window.SwapBuffers()
		window.PollEvents()

		// FPS in the title, refreshed once per second.
		frames++
		if elapsed := time.Since(fpsLastUpdate); elapsed >= time.Second {
			window.SetTitle(fmt.Sprintf("%s | FPS: %.2f", windowTitle, float64(frames)/elapsed.Seconds()))
			frames = 0
			fpsLastUpdate = time.Now()
		}
	}

	log.Println("Scene shutting down.")
	return nil
}

// buildScene compiles the shader programs, uploads the meshes and assembles
// the draw list. The release func, returned only on success, deletes the
// scene's GPU objects; after a failure the caller's context teardown is what
// reclaims any partially created ones.
func buildScene(aspect float32) (*scene.Scene, func(), error) {
	cubeSource, err := shader.ParseFile(cubeShaderPath)
	if err != nil {
		return nil, nil, err
	}
	axesSource, err := shader.ParseFile(axesShaderPath)
	if err != nil {
		return nil, nil, err
	}

	// The cube and the pyramid are drawn with the same program.
	solidProgram, err := shader.NewProgram(cubeSource)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cubeShaderPath, err)
	}
	axesProgram, err := shader.NewProgram(axesSource)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", axesShaderPath, err)
	}

	cubePositions, cubeIndices := geometry.Cube()
	cubeMesh, err := geometry.NewMesh(cubePositions, cubeIndices, gl.TRIANGLES)
	if err != nil {
		return nil, nil, fmt.Errorf("cube: %w", err)
	}
	pyramidPositions, pyramidIndices := geometry.Pyramid()
	pyramidMesh, err := geometry.NewMesh(pyramidPositions, pyramidIndices, gl.TRIANGLES)
	if err != nil {
		return nil, nil, fmt.Errorf("pyramid: %w", err)
	}
	axesMesh, err := geometry.NewMesh(geometry.Axes(), nil, gl.LINES)
	if err != nil {
		return nil, nil, fmt.Errorf("axes: %w", err)
	}

	world := &scene.Scene{
		Camera: scene.Camera{
			Eye:    mgl32.Vec3{5, 3, 5},
			Target: mgl32.Vec3{0, 0, 0},
			Up:     mgl32.Vec3{0, 1, 0},
		},
		Projection: scene.Projection{
			FOVDegrees: 45,
			Aspect:     aspect,
			Near:       0.1,
			Far:        100,
		},
		ClearColor: mgl32.Vec4{0, 0, 0, 1},
		Objects: []*scene.Object{
			{
				Name:    "cube",
				Mesh:    cubeMesh,
				Program: solidProgram,
				Model:   mgl32.Ident4(),
			},
			{
				Name:    "pyramid",
				Mesh:    pyramidMesh,
				Program: solidProgram,
				Model:   mgl32.Translate3D(2.5, 0, 1),
			},
			{
				Name:    "axes",
				Mesh:    axesMesh,
				Program: axesProgram,
				Model:   mgl32.Ident4(),
				Segments: []scene.Segment{
					{First: 0, Count: 2, Color: mgl32.Vec4{1, 0, 0, 1}}, // X in red
					{First: 2, Count: 2, Color: mgl32.Vec4{0, 1, 0, 1}}, // Y in green
					{First: 4, Count: 2, Color: mgl32.Vec4{0, 0, 1, 1}}, // Z in blue
				},
			},
		},
	}

	release := func() {
		cubeMesh.Delete()
		pyramidMesh.Delete()
		axesMesh.Delete()
		solidProgram.Delete()
		axesProgram.Delete()
	}
	return world, release, nil
}

// moveCamera applies one discrete movement step to the camera's eye and
// reports whether the key maps to a movement. Each key shifts exactly one
// component by cameraStep; the target and up vector never change.
func moveCamera(camera *scene.Camera, key glfw.Key) bool {
	switch key {
	case glfw.KeySpace:
		camera.Eye[1] += cameraStep
	case glfw.KeyLeftControl:
		camera.Eye[1] -= cameraStep
	case glfw.KeyW:
		camera.Eye[2] -= cameraStep
	case glfw.KeyS:
		camera.Eye[2] += cameraStep
	case glfw.KeyA:
		camera.Eye[0] -= cameraStep
	case glfw.KeyD:
		camera.Eye[0] += cameraStep
	default:
		return false
	}
	return true
}
