package inmemory

import (
	"testing"

	"autodrill/internal/app/ports"
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

var _ ports.ExtractionMetrics = (*Recorder)(nil)

func TestRecorderSnapshot(t *testing.T) {
	steel := world.ResourceKind{DefName: "steel", Label: "steel", CountPerPortion: 35}
	stone := world.ResourceKind{DefName: "chunk_stone", Label: "stone chunk", CountPerPortion: 1}

	r := NewRecorder()
	r.RecordTicks(250)
	r.RecordTicks(0)
	r.RecordSpawn("d1", drill.SpawnResult{Outcome: drill.OutcomeValuable, Kind: steel, Quantity: 35, Exhausted: true, Deactivated: []string{"d1", "d2"}})
	r.RecordSpawn("d1", drill.SpawnResult{Outcome: drill.OutcomeChunks, Kind: stone, Quantity: 2, Stacks: 2, PlacementFailures: 1})
	r.RecordSpawn("d2", drill.SpawnResult{Outcome: drill.OutcomeNothingDrawn, Kind: stone})

	s := r.Snapshot()
	if s.TicksAdvanced != 250 {
		t.Fatalf("expected 250 ticks, got %d", s.TicksAdvanced)
	}
	if s.SpawnTotal != 3 {
		t.Fatalf("expected total 3, got %d", s.SpawnTotal)
	}
	if s.ByOutcome["valuable"] != 1 || s.ByOutcome["chunks"] != 1 || s.ByOutcome["nothing_drawn"] != 1 {
		t.Fatalf("unexpected outcomes: %+v", s.ByOutcome)
	}
	if s.ItemsProduced["steel"] != 35 || s.ItemsProduced["chunk_stone"] != 2 {
		t.Fatalf("unexpected production: %+v", s.ItemsProduced)
	}
	if s.PlacementFailures != 1 || s.Exhaustions != 1 || s.Deactivations != 2 {
		t.Fatalf("unexpected counters: %+v", s)
	}
	if s.SpawnsByDrill["d1"] != 2 || s.SpawnsByDrill["d2"] != 1 {
		t.Fatalf("unexpected per-drill counts: %+v", s.SpawnsByDrill)
	}
}
