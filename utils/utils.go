// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides random point sampling and loop helpers for track generation.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Source is the randomness used by the pipeline. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a seeded Source. The seed parameter ensures reproducibility.
func NewSource(seed int64) *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewSource(seed))
}

// DotsBounds returns the rectangle of a width x height canvas, scaled by
// fraction and centered.
func DotsBounds(width, height int, fraction float64) r2.Rect {
	size := r2.Point{X: float64(width), Y: float64(height)}
	offset := size.Mul((1 - fraction) / 2)
	return r2.RectFromPoints(offset, offset.Add(size.Mul(fraction)))
}

// GenerateRandomPoints generates cnt points uniformly distributed in bounds.
func GenerateRandomPoints(cnt int, bounds r2.Rect, random Source) []r2.Point {
	points := make([]r2.Point, cnt)
	lo, size := bounds.Lo(), bounds.Size()

	for i := range cnt {
		points[i] = r2.Point{
			X: lo.X + size.X*random.Float64(),
			Y: lo.Y + size.Y*random.Float64(),
		}
	}

	return points
}

// Uniform returns a value uniformly distributed in the closed interval
// [lo, hi]. Float64 yields multiples of 2^-53 below 1; stretching that grid
// by 2^53/(2^53-1) maps its largest value onto hi.
func Uniform(lo, hi float64, random Source) float64 {
	u := math.Min(random.Float64()*(1<<53)/(1<<53-1), 1)
	return lo + (hi-lo)*u
}

// IsClosed reports whether loop ends where it starts.
func IsClosed(loop []r2.Point) bool {
	return len(loop) > 1 && loop[0] == loop[len(loop)-1]
}

// Close returns loop with its first point appended, unless it is already closed.
func Close(loop []r2.Point) []r2.Point {
	if len(loop) == 0 || IsClosed(loop) {
		return loop
	}
	closed := make([]r2.Point, len(loop), len(loop)+1)
	copy(closed, loop)
	return append(closed, loop[0])
}

// Interleave returns a[0], b[0], a[1], b[1], ... followed by the tail of the
// longer slice.
func Interleave(a, b []r2.Point) []r2.Point {
	out := make([]r2.Point, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
	}
	return out
}
