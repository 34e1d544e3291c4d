package stl

import (
	"github.com/Faultbox/cubeatlas/pkg/math"
)

// Extract expands a number stream into vertex streams.
//
// Every 12 numbers form a triangle. A triangle whose three vertices all have
// z exactly equal to 0 is dropped. Each surviving triangle emits its normal
// three times and its vertices in order, all with W = 1.
func Extract(nums []float64) *Mesh {
	count := len(nums) / NumbersPerTriangle
	m := &Mesh{
		Positions: make([]math.Vec4, 0, count*3),
		Normals:   make([]math.Vec4, 0, count*3),
		Triangles: count,
		Leftover:  len(nums) % NumbersPerTriangle,
	}

	for i := 0; i < count; i++ {
		tri := triangleAt(nums[i*NumbersPerTriangle : (i+1)*NumbersPerTriangle])
		if tri.OnGroundPlane() {
			m.Culled++
			continue
		}
		n := tri.Normal.Extend(Homogeneous)
		for _, v := range tri.Vertex {
			m.Normals = append(m.Normals, n)
			m.Positions = append(m.Positions, v.Extend(Homogeneous))
		}
	}
	return m
}

// Facets returns the triangles of the mesh in emission order.
func (m *Mesh) Facets() []Triangle {
	out := make([]Triangle, 0, len(m.Positions)/3)
	for i := 0; i+2 < len(m.Positions); i += 3 {
		out = append(out, Triangle{
			Normal: m.Normals[i].XYZ(),
			Vertex: [3]math.Vec3{
				m.Positions[i].XYZ(),
				m.Positions[i+1].XYZ(),
				m.Positions[i+2].XYZ(),
			},
		})
	}
	return out
}

func triangleAt(n []float64) Triangle {
	return Triangle{
		Normal: math.Vec3{X: n[0], Y: n[1], Z: n[2]},
		Vertex: [3]math.Vec3{
			{X: n[3], Y: n[4], Z: n[5]},
			{X: n[6], Y: n[7], Z: n[8]},
			{X: n[9], Y: n[10], Z: n[11]},
		},
	}
}
