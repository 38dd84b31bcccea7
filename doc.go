/*
Package graphics wraps OpenGL shader compilation and program linking in
owning Go values.

# Overview

A Shader owns one compiled shader object and a Program owns one linked program
object. Both are created only through this package's constructors, which check
the driver's compile or link status and turn a failure into an error carrying
the driver's info log. Both release their native object exactly once, on the
first call to Delete.

The package talks to OpenGL through the Driver interface. The backend/opengl
package provides the implementation on top of go-gl; tests can supply their
own.

# Quick Start

	// A GL 4.1 context must be current on this (locked) thread.
	d := opengl.NewDriver()

	vs, err := graphics.NewVertexShader(d, vertexSource)
	if err != nil {
		return err
	}
	defer vs.Delete()

	fs, err := graphics.NewFragmentShader(d, fragmentSource)
	if err != nil {
		return err
	}
	defer fs.Delete()

	prog, err := graphics.NewProgram(d, vs, fs)
	if err != nil {
		return err
	}
	defer prog.Delete()

	// Render loop
	prog.Use()

# Errors

Compile failures are *CompileError and link failures are *LinkError. Both
hold only the driver's diagnostic text in Log:

	var cerr *graphics.CompileError
	if errors.As(err, &cerr) {
	    fmt.Println(cerr.Kind, cerr.Log)
	}

errors.Is(err, graphics.ErrCompile) and errors.Is(err, graphics.ErrLink)
distinguish the two without a type assertion. A failed compile or link does
not leak the shader or program object it created.

# Ownership

A Program does not own the shaders it was linked from. They are detached
after a successful link and may be deleted at any time afterwards:

	prog, err := graphics.NewProgram(d, vs, fs)
	graphics.DeleteShaders(vs, fs) // prog stays valid

# Threading

OpenGL calls must be issued from the thread that owns the current context.
Nothing in this package is safe for concurrent use.
*/
package graphics
