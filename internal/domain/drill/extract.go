package drill

import "autodrill/internal/domain/world"

type SpawnOutcome string

const (
	OutcomeNoResource   SpawnOutcome = "no_resource"
	OutcomeValuable     SpawnOutcome = "valuable"
	OutcomeChunks       SpawnOutcome = "chunks"
	OutcomeNothingDrawn SpawnOutcome = "nothing_drawn"
)

type SpawnResult struct {
	Outcome           SpawnOutcome       `json:"outcome"`
	Kind              world.ResourceKind `json:"kind"`
	Cell              world.Cell         `json:"cell"`
	CountBefore       int                `json:"count_before"`
	CountAfter        int                `json:"count_after"`
	Quantity          int                `json:"quantity"`
	Stacks            int                `json:"stacks"`
	PlacementFailures int                `json:"placement_failures"`
	Exhausted         bool               `json:"exhausted"`
	Deactivated       []string           `json:"deactivated,omitempty"`
}

// TrySpawn runs one extraction: a valuable deposit is mined and depleted,
// otherwise the base resource is produced as single-unit chunks.
func (d *Drill) TrySpawn(yieldFactor float64) SpawnResult {
	t := d.Locate()
	if !t.HasKind {
		return SpawnResult{Outcome: OutcomeNoResource}
	}
	if t.Found {
		res := d.spawnValuable(t, yieldFactor)
		res.Deactivated, res.Exhausted = d.checkExhaustion(t.Cell)
		return res
	}
	return d.spawnChunks(t.Kind)
}

func (d *Drill) spawnValuable(t Target, yieldFactor float64) SpawnResult {
	rng := d.env.rng()
	portion := min(t.Count, t.Kind.CountPerPortion)
	res := SpawnResult{
		Outcome:     OutcomeValuable,
		Kind:        t.Kind,
		Cell:        t.Cell,
		CountBefore: t.Count,
		CountAfter:  t.Count,
	}
	if d.cfg.ConsumeDeepResources {
		consumed := max(0, RoundRandom(float64(portion)*d.cfg.ResourceConsumptionMultiplier, rng))
		res.CountAfter = max(0, t.Count-consumed)
		d.env.Grid.SetAt(t.Cell, t.Kind, res.CountAfter)
	}

	res.Quantity = max(1, RoundRandom(float64(portion)*yieldFactor*d.cfg.ResourceOutputMultiplier, rng))
	res.Stacks = 1
	if !d.env.place(world.ItemStack{Kind: t.Kind, Count: res.Quantity}, d.Position) {
		res.PlacementFailures++
	}
	return res
}

func (d *Drill) spawnChunks(kind world.ResourceKind) SpawnResult {
	res := SpawnResult{Outcome: OutcomeChunks, Kind: kind, Cell: d.Position, CountBefore: Unlimited, CountAfter: Unlimited}
	n := d.cfg.StoneChunkQuantity.RandomInRange(d.env.rng())
	if n < 1 {
		res.Outcome = OutcomeNothingDrawn
		d.env.notify(nothingDrawnNotification(d))
		return res
	}
	for i := 0; i < n; i++ {
		if !d.env.place(world.ItemStack{Kind: kind, Count: 1}, d.Position) {
			res.PlacementFailures++
		}
	}
	res.Quantity = n
	res.Stacks = n
	return res
}
