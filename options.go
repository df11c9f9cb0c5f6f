// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package racetrack

import (
	"image/color"
	"math"

	"github.com/2dChan/racetrack/hull"
	"github.com/golang/geo/r1"
	"github.com/pkg/errors"
)

const (
	defaultDotsBound         = 0.7
	defaultDotRadius         = 5
	defaultLineWidth         = 5
	defaultMinWarpAngle      = -25
	defaultMaxWarpAngle      = 40
	defaultPointsPerUnitDist = 1
)

// validWarpAngles is the open interval warp angle bounds must lie in, in degrees.
var validWarpAngles = r1.Interval{Lo: -180, Hi: 180}

// Options configures a Track. Use the With* setters; they validate their
// arguments.
type Options struct {
	DotsBound     float64
	BgColor       color.Color
	DotColor      color.Color
	AddedDotColor color.Color
	LineColor     color.Color
	DotRadius     float64
	LineWidth     float64
	// WarpAngles bounds the warp angle, in degrees.
	WarpAngles        r1.Interval
	ShowDots          bool
	ConvexOnly        bool
	Smooth            bool
	PointsPerUnitDist float64
	HullOptions       []hull.Option
}

func defaultOptions() Options {
	return Options{
		DotsBound:         defaultDotsBound,
		BgColor:           color.RGBA{A: 0xff},
		DotColor:          color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		AddedDotColor:     color.RGBA{R: 0xff, G: 0xff, A: 0xff},
		LineColor:         color.RGBA{R: 0xff, A: 0xff},
		DotRadius:         defaultDotRadius,
		LineWidth:         defaultLineWidth,
		WarpAngles:        r1.Interval{Lo: defaultMinWarpAngle, Hi: defaultMaxWarpAngle},
		ShowDots:          true,
		Smooth:            true,
		PointsPerUnitDist: defaultPointsPerUnitDist,
	}
}

type Option func(*Options) error

// WithDotsBound confines generated points to the centered fraction f of the
// canvas, f in (0, 1].
func WithDotsBound(f float64) Option {
	return func(o *Options) error {
		if !(f > 0 && f <= 1) {
			return errors.Wrapf(ErrInvalidArgument, "WithDotsBound: must be in (0, 1], got %v", f)
		}
		o.DotsBound = f
		return nil
	}
}

func colorOption(name string, c color.Color, dst func(*Options) *color.Color) Option {
	return func(o *Options) error {
		if c == nil {
			return errors.Wrapf(ErrInvalidArgument, "%s: color must not be nil", name)
		}
		*dst(o) = c
		return nil
	}
}

func WithBackgroundColor(c color.Color) Option {
	return colorOption("WithBackgroundColor", c, func(o *Options) *color.Color { return &o.BgColor })
}

func WithDotColor(c color.Color) Option {
	return colorOption("WithDotColor", c, func(o *Options) *color.Color { return &o.DotColor })
}

// WithAddedDotColor sets the color of the points inserted by warping.
func WithAddedDotColor(c color.Color) Option {
	return colorOption("WithAddedDotColor", c, func(o *Options) *color.Color { return &o.AddedDotColor })
}

func WithLineColor(c color.Color) Option {
	return colorOption("WithLineColor", c, func(o *Options) *color.Color { return &o.LineColor })
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return errors.Wrapf(ErrInvalidArgument, "%s: must be positive and finite, got %v", name, v)
	}
	return nil
}

func WithDotRadius(r float64) Option {
	return func(o *Options) error {
		if err := positive("WithDotRadius", r); err != nil {
			return err
		}
		o.DotRadius = r
		return nil
	}
}

func WithLineWidth(w float64) Option {
	return func(o *Options) error {
		if err := positive("WithLineWidth", w); err != nil {
			return err
		}
		o.LineWidth = w
		return nil
	}
}

// WithWarpAngles bounds the random warp angle, in degrees. Both bounds must
// lie in (-180, 180) and min must be smaller than max.
func WithWarpAngles(lo, hi float64) Option {
	return func(o *Options) error {
		if !(lo < hi) {
			return errors.Wrapf(ErrInvalidArgument, "WithWarpAngles: min %v must be smaller than max %v", lo, hi)
		}
		if !validWarpAngles.InteriorContains(lo) {
			return errors.Wrapf(ErrInvalidArgument, "WithWarpAngles: min %v must be within (-180, 180)", lo)
		}
		if !validWarpAngles.InteriorContains(hi) {
			return errors.Wrapf(ErrInvalidArgument, "WithWarpAngles: max %v must be within (-180, 180)", hi)
		}
		o.WarpAngles = r1.Interval{Lo: lo, Hi: hi}
		return nil
	}
}

// WithShowDots toggles the markers at sampled and inserted points.
func WithShowDots(show bool) Option {
	return func(o *Options) error {
		o.ShowDots = show
		return nil
	}
}

// WithConvexOnly skips warping; the track follows the convex hull.
func WithConvexOnly(convexOnly bool) Option {
	return func(o *Options) error {
		o.ConvexOnly = convexOnly
		return nil
	}
}

// WithSmoothing selects between the spline curve (true) and the straight
// polygon through the loop vertices (false).
func WithSmoothing(smooth bool) Option {
	return func(o *Options) error {
		o.Smooth = smooth
		return nil
	}
}

// WithPointsPerUnitDistance sets the spline sampling density.
func WithPointsPerUnitDistance(d float64) Option {
	return func(o *Options) error {
		if err := positive("WithPointsPerUnitDistance", d); err != nil {
			return err
		}
		o.PointsPerUnitDist = d
		return nil
	}
}

// WithHullOptions forwards options to hull.NewHull.
func WithHullOptions(setters ...hull.Option) Option {
	return func(o *Options) error {
		o.HullOptions = append(o.HullOptions, setters...)
		return nil
	}
}
