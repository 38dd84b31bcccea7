// Example draws a colored triangle with a program built by the graphics package.
//
// Prerequisites:
//
//	An OpenGL 4.1 capable driver plus the GLFW build dependencies (X11/Wayland or Cocoa headers).
//	go run ./example/         # run this example
//
// Press R to rebuild the program from source, Escape to quit.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	graphics "github.com/Another-DevX/Graphics"
	"github.com/Another-DevX/Graphics/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "graphics example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := opengl.Init(); err != nil {
		return err
	}

	d := opengl.NewDriver()

	prog, err := buildProgram(d)
	if err != nil {
		return err
	}
	// prog may be replaced on reload, so defer through a closure.
	defer func() { prog.Delete() }()

	tri := newTriangle()
	defer tri.Delete()

	reload := false
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyR:
			reload = true
		}
	})

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		if reload {
			reload = false
			next, err := buildProgram(d)
			if err != nil {
				// Keep drawing with the old program.
				fmt.Fprintln(os.Stderr, err)
			} else {
				prog.Delete()
				prog = next
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		prog.Use()
		tri.Draw()

		window.SwapBuffers()
	}

	return nil
}

// buildProgram compiles both stages and links them. The shaders are only
// needed until the link succeeds.
func buildProgram(d graphics.Driver) (*graphics.Program, error) {
	vs, err := graphics.NewVertexShader(d, vertexShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	defer vs.Delete()

	fs, err := graphics.NewFragmentShader(d, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	defer fs.Delete()

	prog, err := graphics.NewProgram(d, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return prog, nil
}
