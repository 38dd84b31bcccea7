package graphics

// Shader owns one compiled GL shader object.
// Call Delete when the shader is no longer needed; a Shader must not be copied.
type Shader struct {
	driver Driver
	id     uint32
	kind   Kind
}

// NewShader compiles source as a shader of the given kind.
// On failure the returned error is a *CompileError carrying the driver's
// info log, and no shader object is left behind.
func NewShader(d Driver, source string, kind Kind, opts ...Option) (*Shader, error) {
	id, err := compile(d, preprocess(source, opts), kind)
	if err != nil {
		return nil, err
	}
	return &Shader{driver: d, id: id, kind: kind}, nil
}

// NewVertexShader compiles source as a vertex shader.
func NewVertexShader(d Driver, source string, opts ...Option) (*Shader, error) {
	return NewShader(d, source, VertexShader, opts...)
}

// NewFragmentShader compiles source as a fragment shader.
func NewFragmentShader(d Driver, source string, opts ...Option) (*Shader, error) {
	return NewShader(d, source, FragmentShader, opts...)
}

// ID returns the GL shader object name, or 0 after Delete.
func (s *Shader) ID() uint32 {
	if s == nil {
		return 0
	}
	return s.id
}

// Kind returns the shader stage.
func (s *Shader) Kind() Kind {
	if s == nil {
		return 0
	}
	return s.kind
}

// Delete releases the shader object. Calling it again is a no-op.
// Programs already linked from this shader are unaffected.
func (s *Shader) Delete() {
	if s == nil || s.id == 0 {
		return
	}
	s.driver.DeleteShader(s.id)
	s.id = 0
}

// DeleteShaders deletes every shader in the list.
func DeleteShaders(shaders ...*Shader) {
	for _, s := range shaders {
		s.Delete()
	}
}

func compile(d Driver, source string, kind Kind) (uint32, error) {
	id := d.CreateShader(uint32(kind))
	if id == 0 {
		return 0, ErrCreateShader
	}

	d.ShaderSource(id, source)
	d.CompileShader(id)

	if d.GetShaderiv(id, compileStatus) != glFalse {
		return id, nil
	}

	log := readInfoLog(d.GetShaderiv(id, infoLogLength), func(buf []byte) int32 {
		return d.GetShaderInfoLog(id, buf)
	})
	d.DeleteShader(id)
	return 0, &CompileError{Kind: kind, Log: log}
}
