package cubemap

import (
	stdmath "math"

	"github.com/Faultbox/cubeatlas/pkg/math"
	"github.com/Faultbox/cubeatlas/pkg/stl"
)

// TexCoord maps a vertex to atlas space.
//
// The vertex is projected onto the free axes of its nearest face, normalized
// against the model bounds, then shifted into the face's cell. Both axes are
// normalized independently, so non-cubic models are stretched.
func TexCoord(pos, normal math.Vec3, bounds stl.Bounds) math.Vec2 {
	f := Nearest(normal)
	a, b := f.FreeAxes()
	col, row := f.Cell()
	return math.Vec2{
		X: (bounds.Percent(a, pos.Axis(a)) + float64(col)) / Grid,
		Y: (bounds.Percent(b, pos.Axis(b)) + float64(row)) / Grid,
	}
}

// Stats summarizes a mapping pass.
type Stats struct {
	Faces     [FaceCount]int // Vertices per face
	NonFinite int            // Vertices with a NaN or infinite component
}

// Map computes a texture coordinate for every vertex of m.
func Map(m *stl.Mesh) ([]math.Vec2, Stats, error) {
	var stats Stats
	bounds, err := m.Bounds()
	if err != nil {
		return nil, stats, err
	}

	out := make([]math.Vec2, len(m.Positions))
	for i, p := range m.Positions {
		n := m.Normals[i].XYZ()
		stats.Faces[Nearest(n)]++
		uv := TexCoord(p.XYZ(), n, bounds)
		if !finite(uv.X) || !finite(uv.Y) {
			stats.NonFinite++
		}
		out[i] = uv
	}
	return out, stats, nil
}

func finite(f float64) bool {
	return !stdmath.IsNaN(f) && !stdmath.IsInf(f, 0)
}
