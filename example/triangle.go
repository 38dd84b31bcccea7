package main

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aColor;

out vec3 Color;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
`

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec3 Color;

out vec4 FragColor;

void main() {
    FragColor = vec4(Color, 1.0);
}
`

type vertex struct {
	Pos   [2]float32
	Color [3]float32
}

// triangle owns the vertex array and buffer for a single triangle.
type triangle struct {
	vao, vbo uint32
}

func newTriangle() *triangle {
	vertices := []vertex{
		{Pos: [2]float32{-0.5, -0.5}, Color: [3]float32{1, 0, 0}},
		{Pos: [2]float32{0.5, -0.5}, Color: [3]float32{0, 1, 0}},
		{Pos: [2]float32{0, 0.5}, Color: [3]float32{0, 0, 1}},
	}

	t := &triangle{}

	// Create VAO
	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	// Create VBO
	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(vertex{})), gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return t
}

// Draw issues the draw call. The caller binds the program first.
func (t *triangle) Draw() {
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Delete releases OpenGL resources.
func (t *triangle) Delete() {
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
}
