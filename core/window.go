// Package core owns the window and the OpenGL context living in it.
package core

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps the GLFW window carrying the OpenGL context. All methods
// must be called from the thread the window was created on.
type Window struct {
	window *glfw.Window

	width, height int
}

// NewWindow initializes GLFW, opens a fixed-size window with a 4.1 core
// profile context, makes that context current and initializes OpenGL with
// depth testing enabled and vsync on. Any failure tears down whatever was
// already created and returns a wrapped error.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// The projection is computed once at startup, so the window must not
	// change size behind it.
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(width), int32(height))

	log.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{window: window, width: width, height: height}, nil
}

// Aspect returns the window's width to height ratio.
func (w *Window) Aspect() float32 {
	return float32(w.width) / float32(w.height)
}

// ShouldClose reports whether a close was requested, by the window system
// or via RequestClose.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// RequestClose flags the window for closing; the render loop observes the
// flag at the top of its next iteration.
func (w *Window) RequestClose() {
	w.window.SetShouldClose(true)
}

// SwapBuffers presents the finished frame.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents pumps the window system's event queue, firing any installed
// callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

// SetKeyCallback installs fn for keyboard events. Scancode and modifier
// details are dropped; the scene only cares about which key and whether it
// was a press.
func (w *Window) SetKeyCallback(fn func(key glfw.Key, action glfw.Action)) {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fn(key, action)
	})
}

// Close destroys the window and terminates GLFW. The GL context dies with
// the window, releasing any GPU objects still alive in it.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
