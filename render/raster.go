// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const jpegQuality = 95

// RasterCanvas rasterizes with fogleman/gg and saves PNG or JPEG files.
type RasterCanvas struct {
	filename string
	dc       *gg.Context
}

func NewRasterCanvas(filename string, width, height int) *RasterCanvas {
	return &RasterCanvas{
		filename: filename,
		dc:       gg.NewContext(width, height),
	}
}

func (rc *RasterCanvas) FillBackground(c color.Color) {
	rc.dc.SetColor(rgba(c))
	rc.dc.Clear()
}

func (rc *RasterCanvas) DrawEllipse(center r2.Point, rx, ry float64, c color.Color) {
	rc.dc.DrawEllipse(center.X, center.Y, rx, ry)
	rc.dc.SetColor(rgba(c))
	rc.dc.Fill()
}

func (rc *RasterCanvas) DrawPolyline(points []r2.Point, width float64, c color.Color) {
	rc.dc.NewSubPath()
	rc.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		rc.dc.LineTo(p.X, p.Y)
	}
	rc.dc.SetLineWidth(width)
	rc.dc.SetLineJoin(gg.LineJoinRound)
	rc.dc.SetLineCap(gg.LineCapRound)
	rc.dc.SetColor(rgba(c))
	rc.dc.Stroke()
}

// Image returns the canvas pixels.
func (rc *RasterCanvas) Image() image.Image {
	return rc.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (rc *RasterCanvas) EncodePNG(w io.Writer) error {
	return rc.dc.EncodePNG(w)
}

func (rc *RasterCanvas) Save() error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(rc.filename)); ext {
	case ".png":
		err = rc.dc.SavePNG(rc.filename)
	case ".jpg", ".jpeg":
		err = gg.SaveJPG(rc.filename, rc.dc.Image(), jpegQuality)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "render: raster canvas cannot encode %q", ext)
	}
	if err != nil {
		return errors.Wrapf(err, "render: saving %s", rc.filename)
	}
	tracer().Infof("saved %s", rc.filename)
	return nil
}
