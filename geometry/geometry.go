// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geometry provides the 2D vector helpers used by the track pipeline:
// angles, rotations, distances and the hypotenuse endpoint construction.

package geometry

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument reports a bad argument: an unknown unit keyword,
	// a zero vector where a direction is needed, or an out-of-range
	// configuration value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateInput reports geometry that cannot be processed, such as
	// collinear hull input or coincident spline control points.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Unit selects how angles are passed in and returned.
type Unit int

const (
	Radians Unit = iota
	Degrees
)

func (u Unit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	}
	return "Unit(invalid)"
}

// ParseUnit maps a unit keyword to a Unit.
func ParseUnit(keyword string) (Unit, error) {
	switch keyword {
	case "r", "rad", "radians":
		return Radians, nil
	case "d", "deg", "degrees":
		return Degrees, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "%q is not a valid unit keyword", keyword)
}

// ToAngle converts theta given in unit u to an s1.Angle.
func (u Unit) ToAngle(theta float64) (s1.Angle, error) {
	switch u {
	case Radians:
		return s1.Angle(theta) * s1.Radian, nil
	case Degrees:
		return s1.Angle(theta) * s1.Degree, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unit %d is not valid", int(u))
}

// FromAngle expresses a in unit u.
func (u Unit) FromAngle(a s1.Angle) (float64, error) {
	switch u {
	case Radians:
		return a.Radians(), nil
	case Degrees:
		return a.Degrees(), nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unit %d is not valid", int(u))
}

func isZero(v r2.Point) bool {
	return v.X == 0 && v.Y == 0
}

// Angle returns the unsigned angle between u and v, in [0, π] or [0, 180].
func Angle(u, v r2.Point, unit Unit) (float64, error) {
	if isZero(u) || isZero(v) {
		return 0, errors.Wrap(ErrInvalidArgument, "Angle: cannot pass a zero vector")
	}
	cos := u.Dot(v) / u.Norm() / v.Norm()
	// Rounding can push |cos| slightly above 1.
	cos = math.Max(-1, math.Min(1, cos))
	return unit.FromAngle(s1.Angle(math.Acos(cos)))
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 r2.Point) r2.Point {
	return p1.Add(p2).Mul(0.5)
}

// Vector returns the vector from p1 to p2.
func Vector(p1, p2 r2.Point) r2.Point {
	return p2.Sub(p1)
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 r2.Point) float64 {
	return Vector(p1, p2).Norm()
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction and yields ErrInvalidArgument.
func Normalize(v r2.Point) (r2.Point, error) {
	if isZero(v) {
		return r2.Point{}, errors.Wrap(ErrInvalidArgument, "Normalize: cannot pass a zero vector")
	}
	return v.Mul(1 / v.Norm()), nil
}

// Cross returns the z component of the cross product of u and v.
// It is positive when v turns counter-clockwise from u.
func Cross(u, v r2.Point) float64 {
	return u.Cross(v)
}

// Matrix is a 2x2 matrix in row-major order.
type Matrix [2][2]float64

// Apply returns m·v.
func (m Matrix) Apply(v r2.Point) r2.Point {
	return r2.Point{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// RotationMatrix returns the counter-clockwise rotation by theta.
func RotationMatrix(theta float64, unit Unit) (Matrix, error) {
	a, err := unit.ToAngle(theta)
	if err != nil {
		return Matrix{}, err
	}
	sin, cos := math.Sincos(a.Radians())
	return Matrix{
		{cos, -sin},
		{sin, cos},
	}, nil
}

// Rotate rotates v counter-clockwise by theta.
func Rotate(v r2.Point, theta float64, unit Unit) (r2.Point, error) {
	m, err := RotationMatrix(theta, unit)
	if err != nil {
		return r2.Point{}, err
	}
	return m.Apply(v), nil
}

// Endpoint treats p1→p2 as the adjacent leg of a right triangle with angle
// theta at p1 and returns the far end of the hypotenuse.
//
// The hypotenuse length is |p1p2|/cos(theta), so the result runs off to
// infinity as theta approaches ±90° and flips behind p1 beyond that.
// Callers are expected to keep theta well inside (-90°, 90°).
func Endpoint(p1, p2 r2.Point, theta float64, unit Unit) (r2.Point, error) {
	a, err := unit.ToAngle(theta)
	if err != nil {
		return r2.Point{}, err
	}
	vec := Vector(p1, p2)
	rot, err := Rotate(vec, a.Radians(), Radians)
	if err != nil {
		return r2.Point{}, err
	}
	dir, err := Normalize(rot)
	if err != nil {
		return r2.Point{}, errors.Wrap(err, "Endpoint: p1 and p2 coincide")
	}
	length := vec.Norm() / math.Cos(a.Radians())
	return p1.Add(dir.Mul(length)), nil
}
