// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package racetrack generates closed, smooth racetrack outlines: random points
// are wrapped in their convex hull, the hull is optionally warped, and a
// centripetal Catmull-Rom spline is threaded through the result.

package racetrack

import (
	"github.com/2dChan/racetrack/geometry"
	"github.com/2dChan/racetrack/hull"
	"github.com/2dChan/racetrack/render"
	"github.com/2dChan/racetrack/spline"
	"github.com/2dChan/racetrack/utils"
	"github.com/golang/geo/r2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

var (
	ErrInvalidArgument = geometry.ErrInvalidArgument
	ErrDegenerateInput = geometry.ErrDegenerateInput
)

// Track holds the geometry of one generated track. It is not safe for
// concurrent use.
type Track struct {
	NumPoints     int
	Width, Height int
	Options       Options

	random utils.Source

	points []r2.Point
	hull   *hull.Hull
	added  []r2.Point
	// NOTE: Implicitly closed when warped, explicitly closed otherwise.
	loop []r2.Point
}

// NewTrack validates the configuration and generates a track on a
// width x height canvas from numPoints random points.
func NewTrack(numPoints, width, height int, random utils.Source, setters ...Option) (*Track, error) {
	if numPoints < 3 {
		return nil, errors.Wrapf(ErrInvalidArgument, "NewTrack: numPoints must be >= 3, got %d", numPoints)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "NewTrack: dimensions must be positive, got %dx%d", width, height)
	}
	if random == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "NewTrack: nil random source")
	}

	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	t := &Track{
		NumPoints: numPoints,
		Width:     width,
		Height:    height,
		Options:   opts,
		random:    random,
	}
	if err := t.Reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset samples a fresh point set from the track's random source and
// recomputes the hull and warp.
func (t *Track) Reset() error {
	bounds := utils.DotsBounds(t.Width, t.Height, t.Options.DotsBound)
	points := utils.GenerateRandomPoints(t.NumPoints, bounds, t.random)

	h, err := hull.NewHull(points, t.Options.HullOptions...)
	if err != nil {
		tracer().Errorf("hull of %d points failed: %v", len(points), err)
		return errors.Wrap(err, "racetrack")
	}

	loop := h.Loop()
	var added []r2.Point
	if !t.Options.ConvexOnly {
		loop, added, err = Warp(loop, t.Options.WarpAngles, t.random)
		if err != nil {
			return errors.Wrap(err, "racetrack")
		}
	}

	t.points, t.hull, t.added, t.loop = points, h, added, loop
	tracer().Debugf("track: %d points, %d hull vertices, %d inserted", len(points), h.NumVertices(), len(added))
	return nil
}

// Points returns the sampled point set.
func (t *Track) Points() []r2.Point {
	return t.points
}

// AddedPoints returns the points inserted by warping, nil for convex-only tracks.
func (t *Track) AddedPoints() []r2.Point {
	return t.added
}

// Hull returns the convex hull of Points.
func (t *Track) Hull() *hull.Hull {
	return t.hull
}

// Loop returns the track polygon: the warped loop (2N points, implicitly
// closed) or, for convex-only tracks, the closed hull loop.
func (t *Track) Loop() []r2.Point {
	return t.loop
}

// Curve returns the spline through the closed track polygon.
func (t *Track) Curve() ([]r2.Point, error) {
	curve, err := spline.Loop(utils.Close(t.loop), t.Options.PointsPerUnitDist)
	if err != nil {
		return nil, errors.Wrap(err, "racetrack")
	}
	return curve, nil
}

// Path returns the line that gets drawn: the spline curve when smoothing is
// on, the closed polygon otherwise.
func (t *Track) Path() ([]r2.Point, error) {
	if !t.Options.Smooth {
		return utils.Close(t.loop), nil
	}
	return t.Curve()
}

// Scene converts the track into drawing commands.
func (t *Track) Scene() (*render.Scene, error) {
	path, err := t.Path()
	if err != nil {
		return nil, err
	}

	s := &render.Scene{
		Width:      t.Width,
		Height:     t.Height,
		Background: t.Options.BgColor,
		Lines: []render.Polyline{
			{Points: path, Width: t.Options.LineWidth, Color: t.Options.LineColor},
		},
	}
	if t.Options.ShowDots {
		s.Dots = make([]render.Dot, 0, len(t.points)+len(t.added))
		for _, p := range t.points {
			s.Dots = append(s.Dots, render.Dot{Center: p, Radius: t.Options.DotRadius, Color: t.Options.DotColor})
		}
		for _, p := range t.added {
			s.Dots = append(s.Dots, render.Dot{Center: p, Radius: t.Options.DotRadius, Color: t.Options.AddedDotColor})
		}
	}
	return s, nil
}

// Draw paints the track onto c without saving it.
func (t *Track) Draw(c render.Canvas) error {
	s, err := t.Scene()
	if err != nil {
		return err
	}
	return s.Draw(c)
}

// Render draws the track into filename; the extension picks the format.
// The scene is built before the output file is created, so a failing
// pipeline leaves nothing on disk.
func (t *Track) Render(filename string) error {
	s, err := t.Scene()
	if err != nil {
		return err
	}
	c, err := render.NewCanvas(filename, t.Width, t.Height)
	if err != nil {
		return err
	}
	if err := s.Draw(c); err != nil {
		return err
	}
	return c.Save()
}
