package core

import (
	"math"
	"testing"
)

func box(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        box(50, 50, 10, 10),
			b:        box(50, 50, 4, 4),
			expected: true,
		},
		{
			name:     "overlap on both axes",
			a:        box(0, 0, 10, 10),
			b:        box(8, 8, 10, 10),
			expected: true,
		},
		{
			name:     "touching horizontally (no overlap)",
			a:        box(0, 0, 10, 10),
			b:        box(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertically (no overlap)",
			a:        box(0, 0, 10, 10),
			b:        box(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "x overlaps but y apart",
			a:        box(0, 0, 10, 10),
			b:        box(2, 30, 10, 10),
			expected: false,
		},
		{
			name:     "asymmetric sizes",
			a:        box(50, 10, 70, 84),
			b:        box(50, 80, 51, 73),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Errorf("Normalize() length = %f, expected 1", v.Len())
	}

	zero := Vec2{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Normalize() of zero vector = %+v, expected zero", zero)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
}
