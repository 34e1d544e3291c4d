package stl

import (
	"github.com/Faultbox/cubeatlas/pkg/math"
)

// Bounds is the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Extent returns max - min along axis i.
func (b Bounds) Extent(i int) float64 {
	return b.Max.Axis(i) - b.Min.Axis(i)
}

// Percent returns the position of v along axis i as a fraction of the extent.
// A zero extent yields a non-finite result.
func (b Bounds) Percent(i int, v float64) float64 {
	lo := b.Min.Axis(i)
	return (v - lo) / (b.Max.Axis(i) - lo)
}

// Bounds computes the bounding box over all emitted positions.
func (m *Mesh) Bounds() (Bounds, error) {
	if len(m.Positions) == 0 {
		return Bounds{}, ErrEmptyMesh
	}
	first := m.Positions[0].XYZ()
	b := Bounds{Min: first, Max: first}
	for _, p := range m.Positions[1:] {
		v := p.XYZ()
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b, nil
}
