// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/2dChan/racetrack/geometry"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ParseColor accepts an SVG color name ("yellow", "darkred") or a hex triplet
// ("#ff0", "#ff0000").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, errors.Wrapf(geometry.ErrInvalidArgument, "unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, errors.Wrapf(geometry.ErrInvalidArgument, "malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(geometry.ErrInvalidArgument, "malformed hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
