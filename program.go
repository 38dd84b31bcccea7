package graphics

// Program owns one linked GL program object.
// Call Delete when the program is no longer needed; a Program must not be copied.
type Program struct {
	driver Driver
	id     uint32
}

// NewProgram links the given shaders into a program. The shaders are attached
// in order, and detached again once linking succeeds, so the caller keeps
// ownership of them and may delete them right away.
//
// On link failure the returned error is a *LinkError carrying the driver's
// info log, and the program object is released.
func NewProgram(d Driver, shaders ...*Shader) (*Program, error) {
	id, err := link(d, shaders)
	if err != nil {
		return nil, err
	}
	return &Program{driver: d, id: id}, nil
}

// ID returns the GL program object name, or 0 after Delete.
func (p *Program) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

// Use makes the program current for subsequent draw calls.
// It does nothing once the program is deleted.
func (p *Program) Use() {
	if p == nil || p.id == 0 {
		return
	}
	p.driver.UseProgram(p.id)
}

// Delete releases the program object. Calling it again is a no-op.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.driver.DeleteProgram(p.id)
	p.id = 0
}

func link(d Driver, shaders []*Shader) (uint32, error) {
	for _, s := range shaders {
		if s.ID() == 0 {
			return 0, ErrShaderDeleted
		}
	}

	id := d.CreateProgram()
	if id == 0 {
		return 0, ErrCreateProgram
	}

	for _, s := range shaders {
		d.AttachShader(id, s.id)
	}
	d.LinkProgram(id)

	if d.GetProgramiv(id, linkStatus) == glFalse {
		log := readInfoLog(d.GetProgramiv(id, infoLogLength), func(buf []byte) int32 {
			return d.GetProgramInfoLog(id, buf)
		})
		// Deleting the program also drops its attachments.
		d.DeleteProgram(id)
		return 0, &LinkError{Log: log}
	}

	for _, s := range shaders {
		d.DetachShader(id, s.id)
	}
	return id, nil
}
