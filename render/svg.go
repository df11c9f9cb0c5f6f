// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// SVGCanvas writes an SVG document. svgo works in integer user units, so
// coordinates are rounded to the nearest pixel.
type SVGCanvas struct {
	canvas        *svg.SVG
	closer        io.Closer
	width, height int
}

// NewSVGCanvas starts an SVG document on w.
func NewSVGCanvas(w io.Writer, width, height int) *SVGCanvas {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVGCanvas{canvas: canvas, width: width, height: height}
}

// CreateSVGCanvas creates filename and starts an SVG document in it. The file
// is closed by Save.
func CreateSVGCanvas(filename string, width, height int) (*SVGCanvas, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "render")
	}
	sc := NewSVGCanvas(file, width, height)
	sc.closer = file
	return sc, nil
}

func fillStyle(c color.Color) string {
	rgb := rgba(c)
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
}

func strokeStyle(c color.Color, width float64) string {
	rgb := rgba(c)
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-width:%g;stroke-linejoin:round;stroke-linecap:round",
		rgb.R, rgb.G, rgb.B, width)
}

func round(v float64) int {
	return int(math.Round(v))
}

func (sc *SVGCanvas) FillBackground(c color.Color) {
	sc.canvas.Rect(0, 0, sc.width, sc.height, fillStyle(c))
}

func (sc *SVGCanvas) DrawEllipse(center r2.Point, rx, ry float64, c color.Color) {
	sc.canvas.Ellipse(round(center.X), round(center.Y), round(rx), round(ry), fillStyle(c))
}

func (sc *SVGCanvas) DrawPolyline(points []r2.Point, width float64, c color.Color) {
	xPoints := make([]int, 0, len(points))
	yPoints := make([]int, 0, len(points))
	for _, p := range points {
		xPoints = append(xPoints, round(p.X))
		yPoints = append(yPoints, round(p.Y))
	}
	sc.canvas.Polyline(xPoints, yPoints, strokeStyle(c, width))
}

func (sc *SVGCanvas) Save() error {
	sc.canvas.End()
	if sc.closer == nil {
		return nil
	}
	if err := sc.closer.Close(); err != nil {
		return errors.Wrap(err, "render")
	}
	tracer().Infof("saved svg document")
	return nil
}
