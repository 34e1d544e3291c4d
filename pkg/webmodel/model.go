// Package webmodel serializes vertex streams as a script assignment that a
// WebGL viewer can load with a plain <script> tag.
package webmodel

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubeatlas/pkg/math"
)

// Serializer errors.
var (
	ErrMisaligned  = errors.New("vertex streams have different lengths")
	ErrInvalidName = errors.New("invalid script variable name")
	ErrNoAssign    = errors.New("script does not contain a variable assignment")
)

// Model is the viewer payload. Entry i of every stream describes vertex i.
type Model struct {
	Positions [][4]float64 `json:"positions"`
	Normals   [][4]float64 `json:"normals"`
	Texcoords [][2]float64 `json:"texcoords"`
}

// New builds a Model from index-aligned streams.
func New(positions, normals []math.Vec4, texcoords []math.Vec2) (*Model, error) {
	if len(positions) != len(normals) || len(positions) != len(texcoords) {
		return nil, fmt.Errorf("%w: positions=%d normals=%d texcoords=%d",
			ErrMisaligned, len(positions), len(normals), len(texcoords))
	}
	m := &Model{
		Positions: make([][4]float64, len(positions)),
		Normals:   make([][4]float64, len(normals)),
		Texcoords: make([][2]float64, len(texcoords)),
	}
	for i := range positions {
		m.Positions[i] = positions[i].Array()
		m.Normals[i] = normals[i].Array()
		m.Texcoords[i] = texcoords[i].Array()
	}
	return m, nil
}

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int {
	return len(m.Positions)
}
