package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestVec2Ops(t *testing.T) {
	a := V(3, 4)
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if got := a.Add(V(1, 1)); got != V(4, 5) {
		t.Errorf("Add() = %v, expected {4 5}", got)
	}
	if got := a.Sub(V(1, 1)); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected {2 3}", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected {6 8}", got)
	}
	n := a.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize().Len() = %f, expected 1", n.Len())
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero Normalize() = %v, expected zero", z)
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		radius float64
		want   bool
	}{
		{"close pair", V(100, 100), V(105, 104), 20, true},
		{"far pair", V(100, 100), V(130, 100), 20, false},
		{"exactly on radius", V(0, 0), V(20, 0), 20, false},
		{"same point", V(7, 7), V(7, 7), 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Within(tc.a, tc.b, tc.radius); got != tc.want {
				t.Errorf("Within(%v, %v, %f) = %v, expected %v", tc.a, tc.b, tc.radius, got, tc.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{W: 800, H: 600}
	if !b.Valid() {
		t.Error("800x600 bounds should be valid")
	}
	if (Bounds{W: 0, H: 600}).Valid() {
		t.Error("zero-width bounds should be invalid")
	}

	tests := []struct {
		p      Vec2
		margin float64
		want   bool
	}{
		{V(400, 300), 0, false},
		{V(-10, 300), 20, false},
		{V(-21, 300), 20, true},
		{V(400, 625), 20, true},
		{V(820, 0), 20, false},
	}
	for _, tc := range tests {
		if got := b.Outside(tc.p, tc.margin); got != tc.want {
			t.Errorf("Outside(%v, %f) = %v, expected %v", tc.p, tc.margin, got, tc.want)
		}
	}
}
