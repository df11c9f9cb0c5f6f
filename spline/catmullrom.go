// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spline implements closed centripetal Catmull-Rom splines.
//
// A segment is evaluated with the Barry-Goldman pyramid: three linear
// interpolations between neighbouring control points, two between those, and
// a final one. Knot spacing follows the centripetal rule t[i+1] = t[i] +
// |P[i+1]-P[i]|^alpha with alpha = 0.5.

package spline

import (
	"math"

	"github.com/2dChan/racetrack/geometry"
	"github.com/2dChan/racetrack/utils"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Alpha is the knot exponent of the centripetal parametrization.
const Alpha = 0.5

func nextKnot(ti float64, pi, pj r2.Point) float64 {
	return ti + math.Pow(geometry.Distance(pi, pj), Alpha)
}

// lerp blends a and b over the knot interval [ta, tb] at t.
func lerp(a, b r2.Point, ta, tb, t float64) r2.Point {
	return a.Mul((tb - t) / (tb - ta)).Add(b.Mul((t - ta) / (tb - ta)))
}

// Segment returns nPoints samples of the curve between p1 and p2, using p0 and
// p3 as exterior control points. A single sample lies halfway through the
// parameter interval; otherwise both p1 and p2 are included.
func Segment(p0, p1, p2, p3 r2.Point, nPoints int) ([]r2.Point, error) {
	if nPoints < 0 {
		return nil, errors.Wrapf(geometry.ErrInvalidArgument, "Segment: nPoints must be non-negative, got %d", nPoints)
	}
	if p0 == p1 || p1 == p2 || p2 == p3 {
		return nil, errors.Wrapf(geometry.ErrDegenerateInput,
			"Segment: consecutive control points coincide (%v, %v, %v, %v)", p0, p1, p2, p3)
	}

	t0 := 0.0
	t1 := nextKnot(t0, p0, p1)
	t2 := nextKnot(t1, p1, p2)
	t3 := nextKnot(t2, p2, p3)

	curve := make([]r2.Point, nPoints)
	for i := range nPoints {
		t := (t1 + t2) / 2
		if nPoints > 1 {
			t = t1 + (t2-t1)*float64(i)/float64(nPoints-1)
		}

		a1 := lerp(p0, p1, t0, t1, t)
		a2 := lerp(p1, p2, t1, t2, t)
		a3 := lerp(p2, p3, t2, t3, t)

		b1 := lerp(a1, a2, t0, t2, t)
		b2 := lerp(a2, a3, t1, t3, t)

		curve[i] = lerp(b1, b2, t1, t2, t)
	}
	return curve, nil
}

// Loop fits a closed spline through loop, which must hold at least 4 points
// and end where it starts. Each edge gets floor(length * pointsPerUnitDist)
// samples; segments are concatenated in order, so the shared knot between two
// edges appears twice.
func Loop(loop []r2.Point, pointsPerUnitDist float64) ([]r2.Point, error) {
	if len(loop) < 4 {
		return nil, errors.Wrapf(geometry.ErrInvalidArgument, "Loop: loop must have at least 4 points, got %d", len(loop))
	}
	if !utils.IsClosed(loop) {
		return nil, errors.Wrap(geometry.ErrInvalidArgument, "Loop: loop must end at its first point")
	}
	if pointsPerUnitDist < 0 || math.IsNaN(pointsPerUnitDist) {
		return nil, errors.Wrapf(geometry.ErrInvalidArgument,
			"Loop: pointsPerUnitDist must be non-negative, got %v", pointsPerUnitDist)
	}

	// Wrap one control point around each end so the closing edge is
	// interpolated like every other edge.
	ext := make([]r2.Point, 0, len(loop)+2)
	ext = append(ext, loop[len(loop)-2])
	ext = append(ext, loop...)
	ext = append(ext, loop[1])

	curve := make([]r2.Point, 0)
	for i := range len(ext) - 3 {
		n := int(math.Floor(geometry.Distance(ext[i+1], ext[i+2]) * pointsPerUnitDist))
		seg, err := Segment(ext[i], ext[i+1], ext[i+2], ext[i+3], n)
		if err != nil {
			return nil, errors.Wrapf(err, "Loop: edge %d", i)
		}
		curve = append(curve, seg...)
	}
	return curve, nil
}
