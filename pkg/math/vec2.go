// Package math provides small float64 vector types for mesh processing.
package math

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float64
}

// Array returns the components as a fixed-size array.
func (v Vec2) Array() [2]float64 {
	return [2]float64{v.X, v.Y}
}
