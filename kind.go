package graphics

import "fmt"

// Kind is a shader stage. Its values are the GL shader type enums, so a Kind
// converts to the driver's constant with a plain uint32 conversion.
type Kind uint32

const (
	FragmentShader       Kind = 0x8B30
	VertexShader         Kind = 0x8B31
	GeometryShader       Kind = 0x8DD9
	TessEvaluationShader Kind = 0x8E87
	TessControlShader    Kind = 0x8E88
)

// String returns the stage name used in error messages.
func (k Kind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	case TessControlShader:
		return "tess control"
	case TessEvaluationShader:
		return "tess evaluation"
	default:
		return fmt.Sprintf("Kind(0x%X)", uint32(k))
	}
}
