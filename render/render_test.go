// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2dChan/racetrack/geometry"
	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	black  = color.RGBA{A: 0xff}
	white  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red    = color.RGBA{R: 0xff, A: 0xff}
	yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
)

func testScene() *Scene {
	return &Scene{
		Width:      100,
		Height:     80,
		Background: black,
		Dots: []Dot{
			{Center: r2.Point{X: 20, Y: 20}, Radius: 6, Color: white},
			{Center: r2.Point{X: 70, Y: 60}, Radius: 6, Color: yellow},
		},
		Lines: []Polyline{
			{
				Points: []r2.Point{{X: 10, Y: 40}, {X: 50, Y: 40}, {X: 90, Y: 40}},
				Width:  4,
				Color:  red,
			},
		},
	}
}

// recordingCanvas logs every call.
type recordingCanvas struct {
	calls []string
	saved bool
}

func (rc *recordingCanvas) FillBackground(color.Color) {
	rc.calls = append(rc.calls, "background")
}

func (rc *recordingCanvas) DrawEllipse(r2.Point, float64, float64, color.Color) {
	rc.calls = append(rc.calls, "ellipse")
}

func (rc *recordingCanvas) DrawPolyline([]r2.Point, float64, color.Color) {
	rc.calls = append(rc.calls, "polyline")
}

func (rc *recordingCanvas) Save() error {
	rc.saved = true
	return nil
}

// Scene

func TestScene_DrawOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := testScene()
	s.Lines = append(s.Lines, Polyline{Points: []r2.Point{{X: 1, Y: 1}}})
	rc := &recordingCanvas{}
	if err := s.Draw(rc); err != nil {
		t.Fatalf("s.Draw(...) error = %v, want nil", err)
	}

	want := []string{"background", "ellipse", "ellipse", "polyline"}
	if diff := cmp.Diff(want, rc.calls); diff != "" {
		t.Errorf("s.Draw(...) calls mismatch (-want +got):\n%v", diff)
	}
	if rc.saved {
		t.Errorf("s.Draw(...) saved the canvas, want unsaved")
	}
}

func TestScene_DrawNilCanvas(t *testing.T) {
	if err := testScene().Draw(nil); err == nil {
		t.Errorf("s.Draw(nil) error = nil, want non-nil")
	}
}

// Canvases

func TestNewCanvas(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		filename string
		wantSVG  bool
		wantErr  error
	}{
		{"track.png", false, nil},
		{"track.JPG", false, nil},
		{"track.jpeg", false, nil},
		{"track.svg", true, nil},
		{"track.gif", false, ErrUnsupportedFormat},
		{"track", false, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			c, err := NewCanvas(filepath.Join(dir, tt.filename), 10, 10)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewCanvas(%q) error = %v, want %v", tt.filename, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if _, isSVG := c.(*SVGCanvas); isSVG != tt.wantSVG {
				t.Errorf("NewCanvas(%q) = %T, want svg %v", tt.filename, c, tt.wantSVG)
			}
			if err := c.Save(); err != nil {
				t.Errorf("c.Save() error = %v, want nil", err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.filename)); err != nil {
				t.Errorf("os.Stat(%q) error = %v, want nil", tt.filename, err)
			}
		})
	}
}

func TestNewCanvas_InvalidSize(t *testing.T) {
	if _, err := NewCanvas("track.png", 0, 10); err == nil {
		t.Errorf("NewCanvas(..., 0, 10) error = nil, want non-nil")
	}
}

func TestRasterCanvas_Pixels(t *testing.T) {
	s := testScene()
	rc := NewRasterCanvas("unused.png", s.Width, s.Height)
	if err := s.Draw(rc); err != nil {
		t.Fatalf("s.Draw(...) error = %v, want nil", err)
	}

	var buf bytes.Buffer
	if err := rc.EncodePNG(&buf); err != nil {
		t.Fatalf("rc.EncodePNG(...) error = %v, want nil", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode(...) error = %v, want nil", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 1, 1, black},
		{"dot", 20, 20, white},
		{"added dot", 70, 60, yellow},
		{"line", 50, 40, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.RGBAModel.Convert(img.At(tt.x, tt.y)).(color.RGBA)
			if got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSVGCanvas_Elements(t *testing.T) {
	var buf bytes.Buffer
	s := testScene()
	sc := NewSVGCanvas(&buf, s.Width, s.Height)
	if err := s.Draw(sc); err != nil {
		t.Fatalf("s.Draw(...) error = %v, want nil", err)
	}
	if err := sc.Save(); err != nil {
		t.Fatalf("sc.Save() error = %v, want nil", err)
	}

	root, err := svgparser.Parse(&buf, false)
	if err != nil {
		t.Fatalf("svgparser.Parse(...) error = %v, want nil", err)
	}
	if got := root.Attributes["width"]; got != "100" {
		t.Errorf("svg width = %q, want %q", got, "100")
	}

	rects := root.FindAll("rect")
	if len(rects) != 1 {
		t.Fatalf("len(rects) = %v, want 1", len(rects))
	}
	if got := rects[0].Attributes["style"]; got != "fill:rgb(0,0,0)" {
		t.Errorf("rect style = %q, want %q", got, "fill:rgb(0,0,0)")
	}

	ellipses := root.FindAll("ellipse")
	if len(ellipses) != len(s.Dots) {
		t.Errorf("len(ellipses) = %v, want %v", len(ellipses), len(s.Dots))
	}

	polylines := root.FindAll("polyline")
	if len(polylines) != 1 {
		t.Fatalf("len(polylines) = %v, want 1", len(polylines))
	}
	points := strings.Fields(polylines[0].Attributes["points"])
	if diff := cmp.Diff([]string{"10,40", "50,40", "90,40"}, points); diff != "" {
		t.Errorf("polyline points mismatch (-want +got):\n%v", diff)
	}
	if style := polylines[0].Attributes["style"]; !strings.Contains(style, "stroke:rgb(255,0,0)") {
		t.Errorf("polyline style = %q, want red stroke", style)
	}
}

// Colors

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"red", red, false},
		{"Yellow", yellow, false},
		{"#ffffff", white, false},
		{"#f00", red, false},
		{" #000000 ", black, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"not-a-color", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, geometry.ErrInvalidArgument) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidArgument", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
