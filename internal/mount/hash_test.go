package mount

import (
	"math"
	"testing"
)

func TestHashIsOverConcatenation(t *testing.T) {
	if Hash([]byte("ab"), []byte("c")) != Hash([]byte("a"), []byte("bc")) {
		t.Error("Hash should depend only on the concatenated bytes")
	}
	if Hash([]byte("a"), []byte("b")) == Hash([]byte("x"), []byte("y")) {
		t.Error("different contents should hash differently")
	}
}

func TestSatInt32(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{"zero", 0, 0},
		{"truncate positive", 1.9, 1},
		{"truncate negative", -1.9, -1},
		{"const", 4.2, 4},
		{"nan", float32(math.NaN()), 0},
		{"positive inf", float32(math.Inf(1)), math.MaxInt32},
		{"negative inf", float32(math.Inf(-1)), math.MinInt32},
		{"too large", 3e9, math.MaxInt32},
		{"too small", -3e9, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := satInt32(tt.in); got != tt.want {
				t.Errorf("satInt32(%v) = %d, expected %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNegate(t *testing.T) {
	tests := []struct {
		in, want int32
	}{
		{5, -5},
		{math.MaxInt32, -math.MaxInt32},
		{0, -1},
		{-1, -2},
		{-100, -101},
		{math.MinInt32 + 1, math.MinInt32},
		{math.MinInt32, math.MinInt32},
	}

	for _, tt := range tests {
		if got := negate(tt.in); got != tt.want {
			t.Errorf("negate(%d) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestFailureString(t *testing.T) {
	tests := []struct {
		f    Failure
		name string
		code int32
	}{
		{Deploy, "Deploy", -1},
		{Exec, "Exec", -2},
		{Out, "Out", 404},
		{Failure(7), "Failure(7)", 7},
	}
	for _, tt := range tests {
		if tt.f.String() != tt.name || tt.f.Code() != tt.code {
			t.Errorf("Failure %d: got (%s, %d), expected (%s, %d)", tt.f, tt.f.String(), tt.f.Code(), tt.name, tt.code)
		}
	}
}
