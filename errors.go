package graphics

import (
	"errors"
	"fmt"
)

var (
	// ErrCompile matches every *CompileError via errors.Is.
	ErrCompile = errors.New("shader compilation failed")
	// ErrLink matches every *LinkError via errors.Is.
	ErrLink = errors.New("shader program linking failed")

	// ErrCreateShader indicates that the driver returned no shader object.
	ErrCreateShader = errors.New("failed to create shader")
	// ErrCreateProgram indicates that the driver returned no program object.
	ErrCreateProgram = errors.New("failed to create program")
	// ErrShaderDeleted is returned when a nil or already deleted shader is
	// passed to NewProgram.
	ErrShaderDeleted = errors.New("shader is nil or deleted")
)

// CompileError is the driver's diagnostic for a shader that failed to compile.
type CompileError struct {
	Kind Kind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, e.Log)
}

// Is reports whether target is ErrCompile.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// LinkError is the driver's diagnostic for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// Is reports whether target is ErrLink.
func (e *LinkError) Is(target error) bool {
	return target == ErrLink
}
