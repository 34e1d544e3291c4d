// Package cubemap assigns texture coordinates by projecting each vertex onto
// the cube face its normal points at most closely.
//
// The six faces are packed into a 3x2 block of a square atlas: face i sits in
// column i%3, row i/3.
package cubemap

import (
	"fmt"

	"github.com/Faultbox/cubeatlas/pkg/math"
)

// Atlas block layout. The block is a square region split into a Grid x Grid
// lattice, of which only the first Rows rows hold faces.
const (
	Grid    = 3
	Columns = Grid
	Rows    = 2
)

// Face is one of the six axis-aligned cube directions.
type Face int

// Faces in candidate order. Ties during selection go to the earlier face.
const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
	FaceCount = 6
)

var directions = [FaceCount]math.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// String returns the face name, e.g. "+X".
func (f Face) String() string {
	switch f {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosY:
		return "+Y"
	case NegY:
		return "-Y"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Direction returns the unit vector of the face.
func (f Face) Direction() math.Vec3 {
	return directions[f]
}

// FreeAxes returns the two axes the face direction has no component on,
// in increasing order.
func (f Face) FreeAxes() (a, b int) {
	d := directions[f]
	free := make([]int, 0, 2)
	for i := 0; i < 3; i++ {
		if d.Axis(i) == 0 {
			free = append(free, i)
		}
	}
	return free[0], free[1]
}

// Cell returns the face's tile position in the atlas block.
func (f Face) Cell() (col, row int) {
	return int(f) % Columns, int(f) / Columns
}

// Nearest returns the face with the strictly greatest dot product against
// normal, scanning in candidate order from an initial maximum of -1.
// Normals that beat no candidate (zero or NaN) map to PosX.
func Nearest(normal math.Vec3) Face {
	best := PosX
	maxDot := -1.0
	for i, d := range directions {
		if dot := normal.Dot(d); dot > maxDot {
			maxDot = dot
			best = Face(i)
		}
	}
	return best
}
