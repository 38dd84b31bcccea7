package graphics

import "strings"

// Option configures how shader source is prepared before upload.
type Option func(*options)

type options struct {
	version string
	defines []define
}

type define struct {
	name, value string
}

// WithVersion prepends a "#version v" directive when the source has none.
//
// Example:
//
//	vs, err := graphics.NewVertexShader(d, src, graphics.WithVersion("410 core"))
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithDefine adds "#define name value" right after the #version directive.
// Defines are emitted in the order the options are given.
func WithDefine(name, value string) Option {
	return func(o *options) {
		o.defines = append(o.defines, define{name: name, value: value})
	}
}

// preprocess applies opts to source. Without options source is returned as is.
func preprocess(source string, opts []Option) string {
	if len(opts) == 0 {
		return source
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	header, body := splitVersion(source)
	if header == "" && o.version != "" {
		header = "#version " + o.version + "\n"
	}
	if header == "" && len(o.defines) == 0 {
		return source
	}

	var sb strings.Builder
	sb.WriteString(header)
	for _, d := range o.defines {
		sb.WriteString("#define ")
		sb.WriteString(d.name)
		if d.value != "" {
			sb.WriteByte(' ')
			sb.WriteString(d.value)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(body)
	return sb.String()
}

// splitVersion returns everything up to and including the #version line,
// and the rest of the source. Only whitespace and comments may precede the
// directive.
func splitVersion(source string) (header, body string) {
	i := 0
	for i < len(source) {
		rest := source[i:]
		switch {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\r' || rest[0] == '\n':
			i++
		case strings.HasPrefix(rest, "//"):
			eol := strings.IndexByte(rest, '\n')
			if eol < 0 {
				return "", source
			}
			i += eol + 1
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return "", source
			}
			i += 2 + end + 2
		case strings.HasPrefix(rest, "#version"):
			eol := strings.IndexByte(rest, '\n')
			if eol < 0 {
				return source + "\n", ""
			}
			return source[:i+eol+1], source[i+eol+1:]
		default:
			return "", source
		}
	}
	return "", source
}
