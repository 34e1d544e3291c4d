// Package stl extracts renderable vertex streams from STL model files.
//
// Both encodings are reduced to the same flat number stream (facet normal
// followed by three vertices, 12 numbers per triangle) before triangles are
// expanded, so culling and ordering rules do not depend on the encoding.
package stl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/cubeatlas/pkg/math"
)

// STL errors.
var (
	ErrEmptyMesh       = errors.New("mesh has no vertices")
	ErrTruncatedBinary = errors.New("truncated binary STL data")
)

// NumbersPerTriangle is the size of one facet in the number stream.
const NumbersPerTriangle = 12

// Homogeneous is the W component appended to every position and normal.
const Homogeneous = 1.0

// Triangle is one facet of the number stream.
type Triangle struct {
	Normal math.Vec3
	Vertex [3]math.Vec3
}

// OnGroundPlane reports whether all three vertices lie exactly on z = 0.
func (t Triangle) OnGroundPlane() bool {
	return t.Vertex[0].Z == 0 && t.Vertex[1].Z == 0 && t.Vertex[2].Z == 0
}

// Mesh holds the expanded, index-aligned vertex streams.
type Mesh struct {
	Positions []math.Vec4
	Normals   []math.Vec4

	Triangles int  // Facets read from the number stream
	Culled    int  // Facets dropped by ground-plane culling
	Leftover  int  // Trailing numbers that did not fill a facet
	Binary    bool // Source was binary STL
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Options controls how ASCII text is scanned.
type Options struct {
	// IgnoreSolidNames drops "solid <name>" lines before scanning.
	IgnoreSolidNames bool
}

// Parse decodes STL data in either encoding.
func Parse(data []byte) (*Mesh, error) {
	return ParseWith(data, Options{})
}

// ParseWith decodes STL data using opts for ASCII input.
func ParseWith(data []byte, opts Options) (*Mesh, error) {
	if IsBinary(data) {
		nums, err := binaryNumbers(data)
		if err != nil {
			return nil, err
		}
		m := Extract(nums)
		m.Binary = true
		return m, nil
	}
	if opts.IgnoreSolidNames {
		data = StripSolidNames(data)
	}
	return Extract(ScanNumbers(data)), nil
}

// Decode reads all of r and parses it.
func Decode(r io.Reader) (*Mesh, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading STL: %w", err)
	}
	return Parse(buf.Bytes())
}

// ReadFile parses the STL file at path.
func ReadFile(path string, opts Options) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseWith(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
