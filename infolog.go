package graphics

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readInfoLog extracts a driver info log of the given length. The buffer is
// pre-filled with spaces so fill always has a valid destination of exactly
// length bytes. Invalid UTF-8 is replaced with U+FFFD.
func readInfoLog(length int32, fill func(buf []byte) int32) string {
	if length <= 0 {
		return ""
	}

	buf := bytes.Repeat([]byte{' '}, int(length))
	if n := fill(buf); n >= 0 && int(n) <= len(buf) {
		buf = buf[:n]
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	return strings.TrimRight(decodeLossy(buf), " \t\r\n")
}

func decodeLossy(b []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}
