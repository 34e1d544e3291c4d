package math

// Vec4 is a homogeneous vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Array returns the components as a fixed-size array.
func (v Vec4) Array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}
