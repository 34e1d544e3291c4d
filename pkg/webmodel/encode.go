package webmodel

import (
	"bytes"
	"io"
	"math"
	"regexp"
	"strconv"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Encode writes "let <name> = <object>;" to w in a single write.
//
// The object is JSON except that non-finite numbers are written as the
// script literals NaN, Infinity and -Infinity.
func Encode(w io.Writer, name string, m *Model) error {
	if !identPattern.MatchString(name) {
		return ErrInvalidName
	}
	var buf bytes.Buffer
	buf.WriteString("let ")
	buf.WriteString(name)
	buf.WriteString(" = ")
	appendObject(&buf, m)
	buf.WriteString(";")
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeJSON writes only the object literal, followed by a newline.
func EncodeJSON(w io.Writer, m *Model) error {
	var buf bytes.Buffer
	appendObject(&buf, m)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func appendObject(buf *bytes.Buffer, m *Model) {
	buf.WriteString(`{"positions":`)
	appendVec4s(buf, m.Positions)
	buf.WriteString(`,"normals":`)
	appendVec4s(buf, m.Normals)
	buf.WriteString(`,"texcoords":`)
	buf.WriteByte('[')
	for i, v := range m.Texcoords {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendFloats(buf, v[:])
	}
	buf.WriteString("]}")
}

func appendVec4s(buf *bytes.Buffer, vs [][4]float64) {
	buf.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendFloats(buf, v[:])
	}
	buf.WriteByte(']')
}

func appendFloats(buf *bytes.Buffer, fs []float64) {
	var scratch [32]byte
	buf.WriteByte('[')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(appendFloat(scratch[:0], f))
	}
	buf.WriteByte(']')
}

// appendFloat formats f the way encoding/json does, with script literals
// for values JSON cannot represent.
func appendFloat(b []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(b, "NaN"...)
	case math.IsInf(f, 1):
		return append(b, "Infinity"...)
	case math.IsInf(f, -1):
		return append(b, "-Infinity"...)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b = strconv.AppendFloat(b, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}
