package drill

import (
	"math"

	"autodrill/internal/domain/world"
)

// Unlimited is the count reported for the map base resource.
const Unlimited = math.MaxInt

type Target struct {
	Kind    world.ResourceKind `json:"kind"`
	HasKind bool               `json:"has_kind"`
	Count   int                `json:"count"`
	Cell    world.Cell         `json:"cell"`
	Found   bool               `json:"found"`
}

// Locate returns the first deposit in radial scan order around the drill.
// Without one it reports the map base resource, if any, at the drill position.
func (d *Drill) Locate() Target {
	if d.env != nil && d.env.Grid != nil {
		n := world.NumCellsInRadius(float64(d.cfg.scanRadius()))
		for i := 0; i < n; i++ {
			c := d.Position.Add(world.RadialPattern[i])
			if !d.env.Bounds.InBounds(c) {
				continue
			}
			if kind, ok := d.env.Grid.KindAt(c); ok {
				return Target{
					Kind:    kind,
					HasKind: true,
					Count:   d.env.Grid.CountAt(c),
					Cell:    c,
					Found:   true,
				}
			}
		}
	}
	base, ok := d.env.baseResource()
	return Target{
		Kind:    base,
		HasKind: ok,
		Count:   Unlimited,
		Cell:    d.Position,
	}
}

func (d *Drill) ValuableResourcesPresent() bool {
	return d.Locate().Found
}
