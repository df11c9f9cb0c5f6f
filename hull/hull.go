// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull computes planar convex hulls on top of quickhull-go.

package hull

import (
	"math"
	"sort"

	"github.com/2dChan/racetrack/geometry"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

const (
	defaultEps = 1e-12
)

// Hull is the convex hull of a planar point set.
type Hull struct {
	Points []r2.Point
	// NOTE: Sorted in CCW order with y pointing up.
	Indices []int
}

type Options struct {
	Eps float64
}

type Option func(*Options) error

func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.Wrapf(geometry.ErrInvalidArgument, "WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewHull computes the convex hull of points.
//
// quickhull-go works in three dimensions, so every point is lifted into a
// prism (z = 0 and z = h). The hull vertices on the bottom face are exactly
// the planar hull vertices.
func NewHull(points []r2.Point, setters ...Option) (*Hull, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numPoints := len(points)
	if numPoints < 3 {
		return nil, errors.Wrapf(geometry.ErrDegenerateInput,
			"hull: insufficient points (minimum 3 required, got %d)", numPoints)
	}
	bounds := r2.RectFromPoints(points...)
	extent := math.Max(bounds.X.Length(), bounds.Y.Length())
	if isCollinear(points, extent*opts.Eps) {
		return nil, errors.Wrap(geometry.ErrDegenerateInput, "hull: all points are collinear")
	}

	cloud := make([]r3.Vector, 2*numPoints)
	for i, p := range points {
		cloud[i] = r3.Vector{X: p.X, Y: p.Y, Z: 0}
		cloud[numPoints+i] = r3.Vector{X: p.X, Y: p.Y, Z: extent}
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(cloud, true, true, opts.Eps)

	seen := make(map[int]bool)
	indices := make([]int, 0)
	for _, idx := range ch.Indices {
		if idx >= numPoints || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	if len(indices) < 3 {
		return nil, errors.Wrapf(geometry.ErrDegenerateInput,
			"hull: quickhull returned %d planar vertices", len(indices))
	}

	sortIndicesCCW(indices, points)
	indices = dropNonConvexVertices(indices, points, extent*opts.Eps)
	if len(indices) < 3 {
		return nil, errors.Wrap(geometry.ErrDegenerateInput, "hull: hull collapsed to a segment")
	}

	return &Hull{
		Points:  points,
		Indices: indices,
	}, nil
}

// NumVertices returns the number of hull vertices.
func (h *Hull) NumVertices() int {
	return len(h.Indices)
}

// Vertex returns the i-th hull vertex.
func (h *Hull) Vertex(i int) r2.Point {
	if i < 0 || i >= len(h.Indices) {
		panic("Vertex: index out of range")
	}
	return h.Points[h.Indices[i]]
}

// Loop returns the hull vertices in CCW order with the first vertex repeated
// at the end.
func (h *Hull) Loop() []r2.Point {
	loop := make([]r2.Point, 0, len(h.Indices)+1)
	for _, idx := range h.Indices {
		loop = append(loop, h.Points[idx])
	}
	return append(loop, loop[0])
}

// Contains reports whether p lies inside or on the hull, within eps.
func (h *Hull) Contains(p r2.Point, eps float64) bool {
	n := len(h.Indices)
	for i := range n {
		a := h.Points[h.Indices[i]]
		b := h.Points[h.Indices[(i+1)%n]]
		edge := geometry.Vector(a, b)
		if geometry.Cross(edge, geometry.Vector(a, p)) < -eps*edge.Norm() {
			return false
		}
	}
	return true
}

func centroid(indices []int, points []r2.Point) r2.Point {
	var c r2.Point
	for _, idx := range indices {
		c = c.Add(points[idx])
	}
	return c.Mul(1 / float64(len(indices)))
}

func sortIndicesCCW(indices []int, points []r2.Point) {
	c := centroid(indices, points)
	sort.Slice(indices, func(i, j int) bool {
		a := geometry.Vector(c, points[indices[i]])
		b := geometry.Vector(c, points[indices[j]])
		return math.Atan2(a.Y, a.X) < math.Atan2(b.Y, b.X)
	})
}

// dropNonConvexVertices removes every vertex that is not a strict left turn.
// quickhull occasionally reports interior points of the prism's bottom face;
// once sorted around the centroid they show up as reflex turns.
func dropNonConvexVertices(indices []int, points []r2.Point, tol float64) []int {
	for changed := true; changed && len(indices) >= 3; {
		changed = false
		n := len(indices)
		for i := range n {
			prev := points[indices[(i+n-1)%n]]
			cur := points[indices[i]]
			next := points[indices[(i+1)%n]]
			in, out := geometry.Vector(prev, cur), geometry.Vector(cur, next)
			if cur == prev || geometry.Cross(in, out) <= tol*math.Max(in.Norm(), out.Norm()) {
				indices = append(indices[:i], indices[i+1:]...)
				changed = true
				break
			}
		}
	}
	return indices
}

func isCollinear(points []r2.Point, tol float64) bool {
	a := points[0]
	far, farDist := a, 0.0
	for _, p := range points[1:] {
		if d := geometry.Distance(a, p); d > farDist {
			far, farDist = p, d
		}
	}
	if farDist == 0 {
		return true
	}
	dir := geometry.Vector(a, far)
	for _, p := range points {
		if math.Abs(geometry.Cross(dir, geometry.Vector(a, p))) > tol*farDist {
			return false
		}
	}
	return true
}
