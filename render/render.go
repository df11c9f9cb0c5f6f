// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws track scenes onto raster or vector canvases.

package render

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// ErrUnsupportedFormat is returned for output files whose extension no
// canvas can encode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Canvas is the drawing capability a Scene needs.
type Canvas interface {
	FillBackground(c color.Color)
	DrawEllipse(center r2.Point, rx, ry float64, c color.Color)
	DrawPolyline(points []r2.Point, width float64, c color.Color)
	Save() error
}

// Dot is a filled circle marker.
type Dot struct {
	Center r2.Point
	Radius float64
	Color  color.Color
}

// Polyline is an open stroked path.
type Polyline struct {
	Points []r2.Point
	Width  float64
	Color  color.Color
}

// Scene is a backend-neutral list of drawing commands. Dots are painted
// before lines, so lines end up on top.
type Scene struct {
	Width, Height int
	Background    color.Color
	Dots          []Dot
	Lines         []Polyline
}

// Draw replays the scene onto c. It does not save c.
func (s *Scene) Draw(c Canvas) error {
	if c == nil {
		return errors.New("render: nil canvas")
	}
	tracer().Debugf("drawing scene %dx%d: %d dots, %d lines", s.Width, s.Height, len(s.Dots), len(s.Lines))

	c.FillBackground(s.Background)
	for _, d := range s.Dots {
		c.DrawEllipse(d.Center, d.Radius, d.Radius, d.Color)
	}
	for _, l := range s.Lines {
		if len(l.Points) < 2 {
			continue
		}
		c.DrawPolyline(l.Points, l.Width, l.Color)
	}
	return nil
}

// NewCanvas returns a canvas that writes filename when saved. The format is
// chosen by extension: .png, .jpg and .jpeg are rasterized, .svg is written
// as vector graphics.
func NewCanvas(filename string, width, height int) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("render: canvas size must be positive, got %dx%d", width, height)
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png", ".jpg", ".jpeg":
		return NewRasterCanvas(filename, width, height), nil
	case ".svg":
		return CreateSVGCanvas(filename, width, height)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "render: %q", ext)
	}
}

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
