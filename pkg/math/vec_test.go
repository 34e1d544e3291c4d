package math

import (
	"testing"
)

func TestVec2Array(t *testing.T) {
	v := Vec2{0.25, 0.5}
	if got := v.Array(); got != [2]float64{0.25, 0.5} {
		t.Errorf("Vec2.Array() = %v", got)
	}
}

func TestVec3Dot(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{Vec3{1, 0, 0}, Vec3{1, 0, 0}, 1},
		{Vec3{1, 0, 0}, Vec3{-1, 0, 0}, -1},
		{Vec3{0, 0, 1}, Vec3{0, 1, 0}, 0},
		{Vec3{1, 2, 3}, Vec3{4, 5, 6}, 32},
	}
	for _, tt := range tests {
		if got := tt.a.Dot(tt.b); got != tt.want {
			t.Errorf("%v.Dot(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Axis(t *testing.T) {
	v := Vec3{7, 8, 9}
	for i, want := range []float64{7, 8, 9} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 3}
	if got, want := a.Min(b), (Vec3{-1, -2, 3}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}

func TestVec3Extend(t *testing.T) {
	v := Vec3{1, 2, 3}.Extend(1)
	if v.Array() != [4]float64{1, 2, 3, 1} {
		t.Errorf("Extend(1) = %v", v)
	}
	if v.XYZ() != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ() = %v", v.XYZ())
	}
}
