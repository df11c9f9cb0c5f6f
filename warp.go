// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package racetrack

import (
	"github.com/2dChan/racetrack/geometry"
	"github.com/2dChan/racetrack/utils"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Warp inserts one point per edge of the closed loop. For an edge (p1, p2)
// the new point is the hypotenuse endpoint over the leg p1→midpoint, at an
// angle drawn uniformly from angles (degrees).
//
// warped alternates original and inserted points and has length 2N for an
// N-edge loop; it is implicitly closed, i.e. the last point connects back to
// the first. added holds the inserted points in edge order.
func Warp(loop []r2.Point, angles r1.Interval, random utils.Source) (warped, added []r2.Point, err error) {
	if len(loop) < 4 || !utils.IsClosed(loop) {
		return nil, nil, errors.Wrapf(ErrInvalidArgument,
			"Warp: need a closed loop of at least 4 points, got %d", len(loop))
	}
	if random == nil {
		return nil, nil, errors.Wrap(ErrInvalidArgument, "Warp: nil random source")
	}

	numEdges := len(loop) - 1
	added = make([]r2.Point, numEdges)
	for i := range numEdges {
		p1, p2 := loop[i], loop[i+1]
		mid := geometry.Midpoint(p1, p2)
		angle := utils.Uniform(angles.Lo, angles.Hi, random)
		added[i], err = geometry.Endpoint(p1, mid, angle, geometry.Degrees)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "Warp: edge %d", i)
		}
	}

	warped = utils.Interleave(loop[:numEdges], added)
	tracer().Debugf("warped %d edges", numEdges)
	return warped, added, nil
}
