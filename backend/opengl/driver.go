// Package opengl provides an OpenGL 4.1 core driver for the graphics package.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	graphics "github.com/Another-DevX/Graphics"
)

// Driver implements graphics.Driver using go-gl.
// A GL 4.1 context must be current on the calling thread for every method.
type Driver struct{}

var _ graphics.Driver = (*Driver)(nil)

// NewDriver returns a driver bound to whatever context is current.
func NewDriver() *Driver {
	return &Driver{}
}

// Init loads the GL function pointers. Call it once after making a context
// current and before using a Driver.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

func (*Driver) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

// ShaderSource uploads source, NUL-terminating it as go-gl requires.
func (*Driver) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (*Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*Driver) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (*Driver) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(shader, int32(len(buf)), &n, &buf[0])
	return n
}

func (*Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (*Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*Driver) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*Driver) GetProgramInfoLog(program uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &n, &buf[0])
	return n
}

func (*Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}
