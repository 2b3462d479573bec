package drill

import "autodrill/internal/domain/world"

// ExhaustionSweepRadius is how far around a depleted cell other drills are
// checked. It is fixed and does not follow Config.ScanRadius.
const ExhaustionSweepRadius = 4

// checkExhaustion notifies and sweeps neighbours once this drill has no
// valuable deposit left in its own range.
func (d *Drill) checkExhaustion(cell world.Cell) ([]string, bool) {
	if d.ValuableResourcesPresent() {
		return nil, false
	}
	base, ok := d.env.baseResource()
	d.env.notify(exhaustedNotification(d, base.Label, ok))
	return d.flickOffExhaustedAround(cell), true
}

// flickOffExhaustedAround switches off every drill within the sweep radius of
// cell that has no valuable deposit left, this drill included. It is a single
// pass; drills switched off here do not start sweeps of their own.
func (d *Drill) flickOffExhaustedAround(cell world.Cell) []string {
	if d.env.Siblings == nil {
		return nil
	}
	var off []string
	for _, c := range world.CellsInRadius(cell, ExhaustionSweepRadius, d.env.Bounds) {
		other, ok := d.env.Siblings.FirstDrillAt(c)
		if !ok || other == nil {
			continue
		}
		if other.ValuableResourcesPresent() {
			continue
		}
		d.env.Siblings.SetActive(other, false)
		off = append(off, other.ID)
	}
	return off
}
