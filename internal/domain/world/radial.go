package world

import (
	"math"
	"sort"
)

// MaxRadialRadius is the largest radius the precomputed scan pattern covers.
const MaxRadialRadius = 8

// RadialPattern lists offsets from a centre cell nearest-first. Offsets at the
// same distance are ordered by Y, then X, so every scan visits cells in the
// same order.
var RadialPattern []Cell

var radialPatternRadii []float64

func init() {
	origin := Cell{}
	for y := -MaxRadialRadius; y <= MaxRadialRadius; y++ {
		for x := -MaxRadialRadius; x <= MaxRadialRadius; x++ {
			c := Cell{X: x, Y: y}
			if c.DistanceSquared(origin) <= MaxRadialRadius*MaxRadialRadius {
				RadialPattern = append(RadialPattern, c)
			}
		}
	}
	sort.SliceStable(RadialPattern, func(i, j int) bool {
		a, b := RadialPattern[i], RadialPattern[j]
		da, db := a.DistanceSquared(origin), b.DistanceSquared(origin)
		if da != db {
			return da < db
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	radialPatternRadii = make([]float64, len(RadialPattern))
	for i, c := range RadialPattern {
		radialPatternRadii[i] = math.Sqrt(float64(c.DistanceSquared(origin)))
	}
}

// NumCellsInRadius returns how many leading RadialPattern entries lie within
// radius of the centre. A zero radius covers only the centre cell.
func NumCellsInRadius(radius float64) int {
	if radius < 0 {
		radius = 0
	}
	if radius >= MaxRadialRadius {
		return len(RadialPattern)
	}
	return sort.Search(len(radialPatternRadii), func(i int) bool {
		return radialPatternRadii[i] > radius
	})
}

// CellsInRadius returns the in-bounds cells within radius of center in scan order.
func CellsInRadius(center Cell, radius float64, bounds Bounds) []Cell {
	n := NumCellsInRadius(radius)
	out := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		c := center.Add(RadialPattern[i])
		if bounds.InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}
