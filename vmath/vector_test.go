package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want Vec2
	}{
		{0, V2(1, 0)},
		{90, V2(0, 1)},
		{180, V2(-1, 0)},
		{270, V2(0, -1)},
		{720, V2(1, 0)},
		{-90, V2(0, -1)},
	}
	for _, tt := range tests {
		got := FromAngle(tt.deg)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("FromAngle(%v) = %+v, want %+v", tt.deg, got, tt.want)
		}
		if !near(got.Len(), 1) {
			t.Errorf("FromAngle(%v) not unit: %v", tt.deg, got.Len())
		}
	}
}

func TestRotate(t *testing.T) {
	v := Rotate(V2(15, 0), 90)
	if !near(v.X, 0) || !near(v.Y, 15) {
		t.Errorf("Rotate(15,0 by 90) = %+v", v)
	}

	// Full turn is identity
	v = Rotate(V2(3, -4), 360)
	if !near(v.X, 3) || !near(v.Y, -4) {
		t.Errorf("Rotate by 360 = %+v", v)
	}
}

func TestNormalizeZeroSafe(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(0) = %+v, want zero", got)
	}
	if got := V2(3, 4).Normalize(); !near(got.Len(), 1) {
		t.Errorf("Normalize(3,4) length %v", got.Len())
	}
}

func TestReflectPreservesMagnitude(t *testing.T) {
	v := FromAngle(33)
	for i := 0; i < 7; i++ {
		if i%2 == 0 {
			v = v.ReflectX()
		} else {
			v = v.ReflectY()
		}
		if !near(v.Len(), 1) {
			t.Fatalf("reflection %d changed magnitude to %v", i, v.Len())
		}
	}
}

func TestTransformPoints(t *testing.T) {
	quad := []Vec2{{-15, -15}, {-15, 15}, {15, 15}, {15, -15}}
	out := TransformPoints(quad, V2(100, 50), 0)
	for i, p := range out {
		want := quad[i].Add(V2(100, 50))
		if !near(p.X, want.X) || !near(p.Y, want.Y) {
			t.Errorf("point %d = %+v, want %+v", i, p, want)
		}
	}

	out = TransformPoints([]Vec2{{10, 0}}, V2(0, 0), 90)
	if !near(out[0].X, 0) || !near(out[0].Y, 10) {
		t.Errorf("rotated point = %+v", out[0])
	}

	// Input must not be mutated
	if quad[0] != (Vec2{-15, -15}) {
		t.Error("TransformPoints mutated input")
	}
}

func TestClampToRect(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", V2(600, 450), V2(600, 450)},
		{"left", V2(-5, 450), V2(15, 450)},
		{"bottom right", V2(1300, 1000), V2(1185, 885)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToRect(tt.in, 1200, 900, 15, 15)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	// Object wider than arena collapses to center
	got := ClampToRect(V2(0, 0), 20, 20, 15, 15)
	if got != V2(10, 10) {
		t.Errorf("oversized clamp = %+v", got)
	}
}
