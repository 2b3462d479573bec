package inmemory

import (
	"sync"

	"autodrill/internal/domain/drill"
)

type Snapshot struct {
	TicksAdvanced     uint64            `json:"ticks_advanced"`
	SpawnTotal        uint64            `json:"spawn_total"`
	ByOutcome         map[string]uint64 `json:"by_outcome"`
	ItemsProduced     map[string]uint64 `json:"items_produced"`
	PlacementFailures uint64            `json:"placement_failures"`
	Exhaustions       uint64            `json:"exhaustions"`
	Deactivations     uint64            `json:"deactivations"`
	SpawnsByDrill     map[string]uint64 `json:"spawns_by_drill"`
}

type Recorder struct {
	mu            sync.Mutex
	ticks         uint64
	total         uint64
	byOutcome     map[string]uint64
	produced      map[string]uint64
	placeFailures uint64
	exhaustions   uint64
	deactivations uint64
	byDrill       map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
		produced:  map[string]uint64{},
		byDrill:   map[string]uint64{},
	}
}

func (r *Recorder) RecordSpawn(drillID string, res drill.SpawnResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total++
	r.byOutcome[string(res.Outcome)]++
	r.byDrill[drillID]++
	if res.Quantity > 0 && !res.Kind.IsZero() {
		r.produced[res.Kind.DefName] += uint64(res.Quantity)
	}
	r.placeFailures += uint64(res.PlacementFailures)
	if res.Exhausted {
		r.exhaustions++
	}
	r.deactivations += uint64(len(res.Deactivated))
}

func (r *Recorder) RecordTicks(n int) {
	if n <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks += uint64(n)
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TicksAdvanced:     r.ticks,
		SpawnTotal:        r.total,
		PlacementFailures: r.placeFailures,
		Exhaustions:       r.exhaustions,
		Deactivations:     r.deactivations,
		ByOutcome:         copyCounts(r.byOutcome),
		ItemsProduced:     copyCounts(r.produced),
		SpawnsByDrill:     copyCounts(r.byDrill),
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func copyCounts(in map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
