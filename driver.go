package graphics

// GL enum values passed to Driver queries. They match the OpenGL headers so a
// Driver can hand them straight to the native API.
const (
	compileStatus = 0x8B81
	linkStatus    = 0x8B82
	infoLogLength = 0x8B84

	glFalse = 0
)

// Driver is the subset of the OpenGL API needed to build shaders and programs.
// Handles are the driver's opaque object names; 0 is never a valid object.
//
// All methods must be called on the thread that owns the current GL context.
// See backend/opengl for the implementation on top of go-gl.
type Driver interface {
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	// GetShaderInfoLog writes at most len(buf) bytes of the shader's info
	// log into buf and returns the number of bytes written, excluding the
	// terminating NUL.
	GetShaderInfoLog(shader uint32, buf []byte) int32
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	// GetProgramInfoLog behaves like GetShaderInfoLog for program objects.
	GetProgramInfoLog(program uint32, buf []byte) int32
	DeleteProgram(program uint32)
	UseProgram(program uint32)
}
