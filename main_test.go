package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-scene/scene"
)

func startCamera() scene.Camera {
	return scene.Camera{
		Eye:    mgl32.Vec3{5, 3, 5},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func TestMoveCamera(t *testing.T) {
	tests := []struct {
		name    string
		key     glfw.Key
		presses int
		wantEye mgl32.Vec3
	}{
		{"space lifts the eye", glfw.KeySpace, 1, mgl32.Vec3{5, 3.5, 5}},
		{"left control lowers the eye", glfw.KeyLeftControl, 1, mgl32.Vec3{5, 2.5, 5}},
		{"w moves toward -z", glfw.KeyW, 1, mgl32.Vec3{5, 3, 4.5}},
		{"s moves toward +z", glfw.KeyS, 1, mgl32.Vec3{5, 3, 5.5}},
		{"a moves toward -x", glfw.KeyA, 1, mgl32.Vec3{4.5, 3, 5}},
		{"d moves toward +x", glfw.KeyD, 1, mgl32.Vec3{5.5, 3, 5}},
		{"two presses accumulate", glfw.KeyD, 2, mgl32.Vec3{6, 3, 5}},
	}

	for _, tt := range tests {
		camera := startCamera()
		for i := 0; i < tt.presses; i++ {
			if !moveCamera(&camera, tt.key) {
				t.Errorf("%s: moveCamera reported the key as unhandled", tt.name)
			}
		}
		if camera.Eye != tt.wantEye {
			t.Errorf("%s: eye = %v, want %v", tt.name, camera.Eye, tt.wantEye)
		}
		if camera.Target != (mgl32.Vec3{0, 0, 0}) {
			t.Errorf("%s: target moved to %v", tt.name, camera.Target)
		}
		if camera.Up != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("%s: up vector changed to %v", tt.name, camera.Up)
		}
	}
}

func TestMoveCameraIgnoresOtherKeys(t *testing.T) {
	for _, key := range []glfw.Key{glfw.KeyEscape, glfw.KeyQ, glfw.KeyEnter, glfw.KeyRightControl} {
		camera := startCamera()
		if moveCamera(&camera, key) {
			t.Errorf("moveCamera handled key %v", key)
		}
		if camera.Eye != startCamera().Eye {
			t.Errorf("key %v moved the eye to %v", key, camera.Eye)
		}
	}
}
