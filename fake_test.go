package graphics_test

import (
	"strings"

	graphics "github.com/Another-DevX/Graphics"
)

// fakeDriver is an in-memory graphics.Driver. A shader fails to compile when
// its source contains "syntax error"; a program fails to link when linkLog is
// set or nothing is attached.
type fakeDriver struct {
	nextID uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	shaderDeletes  map[uint32]int
	programDeletes map[uint32]int
	used           []uint32

	// compileLog overrides the info log of failing shaders.
	compileLog []byte
	linkLog    string
	noObjects  bool
}

type fakeShader struct {
	kind     uint32
	source   string
	compiled bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
}

// GL query names and booleans as the native API defines them.
const (
	glCompileStatus = 0x8B81
	glLinkStatus    = 0x8B82
	glInfoLogLength = 0x8B84

	glFalse = 0
	glTrue  = 1
)

var _ graphics.Driver = (*fakeDriver)(nil)

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:        make(map[uint32]*fakeShader),
		programs:       make(map[uint32]*fakeProgram),
		shaderDeletes:  make(map[uint32]int),
		programDeletes: make(map[uint32]int),
	}
}

func (d *fakeDriver) alloc() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDriver) CreateShader(kind uint32) uint32 {
	if d.noObjects {
		return 0
	}
	id := d.alloc()
	d.shaders[id] = &fakeShader{kind: kind}
	return id
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) {
	d.shaders[shader].source = source
}

func (d *fakeDriver) CompileShader(shader uint32) {
	s := d.shaders[shader]
	s.compiled = !strings.Contains(s.source, "syntax error")
}

func (d *fakeDriver) GetShaderiv(shader uint32, pname uint32) int32 {
	s := d.shaders[shader]
	switch pname {
	case glCompileStatus:
		if s.compiled {
			return glTrue
		}
		return glFalse
	case glInfoLogLength:
		if s.compiled {
			return 0
		}
		return int32(len(d.shaderLog())) + 1
	}
	return 0
}

func (d *fakeDriver) shaderLog() []byte {
	if d.compileLog != nil {
		return d.compileLog
	}
	return []byte("0:3(1): error: syntax error, unexpected IDENTIFIER\n")
}

func (d *fakeDriver) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	return writeLog(buf, d.shaderLog())
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	d.shaderDeletes[shader]++
}

func (d *fakeDriver) CreateProgram() uint32 {
	if d.noObjects {
		return 0
	}
	id := d.alloc()
	d.programs[id] = &fakeProgram{}
	return id
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
}

func (d *fakeDriver) DetachShader(program, shader uint32) {
	p := d.programs[program]
	for i, id := range p.attached {
		if id == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
}

func (d *fakeDriver) LinkProgram(program uint32) {
	p := d.programs[program]
	switch {
	case d.linkLog != "":
		p.log = d.linkLog
	case len(p.attached) == 0:
		p.log = "error: no shaders attached to the program\n"
	default:
		p.linked = true
	}
}

func (d *fakeDriver) GetProgramiv(program uint32, pname uint32) int32 {
	p := d.programs[program]
	switch pname {
	case glLinkStatus:
		if p.linked {
			return glTrue
		}
		return glFalse
	case glInfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log)) + 1
	}
	return 0
}

func (d *fakeDriver) GetProgramInfoLog(program uint32, buf []byte) int32 {
	return writeLog(buf, []byte(d.programs[program].log))
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	d.programDeletes[program]++
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.used = append(d.used, program)
}

// writeLog mimics glGet*InfoLog: it writes a NUL-terminated copy of log that
// fits in buf and returns the length without the NUL.
func writeLog(buf, log []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], log)
	buf[n] = 0
	return int32(n)
}

func (d *fakeDriver) liveShaders() int {
	n := 0
	for id := range d.shaders {
		if d.shaderDeletes[id] == 0 {
			n++
		}
	}
	return n
}

func (d *fakeDriver) livePrograms() int {
	n := 0
	for id := range d.programs {
		if d.programDeletes[id] == 0 {
			n++
		}
	}
	return n
}
