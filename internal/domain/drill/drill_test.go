package drill

import (
	"testing"

	"autodrill/internal/domain/world"
)

func TestTick_FiresOnCountdownThreshold(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	cfg.SpawnIntervalRange = IntRange{Min: 3, Max: 3}
	d := m.addDrill(env, "d1", world.Cell{X: 4, Y: 4}, &cfg)
	m.deposits[d.Position] = deposit{kind: iron, count: 1000}

	for i := 0; i < 2; i++ {
		if _, fired := d.Tick(1.0); fired {
			t.Fatalf("fired early on tick %d", i+1)
		}
	}
	if _, fired := d.Tick(1.0); !fired {
		t.Fatalf("expected fire on third tick")
	}
	if d.TicksUntilSpawn() != 3 {
		t.Fatalf("expected countdown reset to 3, got %d", d.TicksUntilSpawn())
	}
}

func TestTickRare_FiresOncePerBatch(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	cfg.SpawnIntervalRange = IntRange{Min: 100, Max: 100}
	d := m.addDrill(env, "d1", world.Cell{X: 4, Y: 4}, &cfg)
	m.deposits[d.Position] = deposit{kind: iron, count: 1000}

	if _, fired := d.TickRare(1.0); !fired {
		t.Fatalf("expected a rare tick to cover the whole countdown")
	}
	if len(m.placed) != 1 {
		t.Fatalf("expected a single extraction per batch, got %d", len(m.placed))
	}
	if d.TicksUntilSpawn() != 100 {
		t.Fatalf("expected countdown reset, got %d", d.TicksUntilSpawn())
	}
}

func TestTick_MixedGranularityNeverDoubleFires(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	cfg.SpawnIntervalRange = IntRange{Min: 500, Max: 500}
	d := m.addDrill(env, "d1", world.Cell{X: 4, Y: 4}, &cfg)
	m.deposits[d.Position] = deposit{kind: iron, count: 100000}

	fires := 0
	for i := 0; i < 250; i++ {
		if _, fired := d.Tick(1.0); fired {
			fires++
		}
	}
	if _, fired := d.TickRare(1.0); fired {
		fires++
	}
	if fires != 1 {
		t.Fatalf("expected exactly one fire over 500 ticks, got %d", fires)
	}
}

func TestTick_RequiresSpawnedAndPowered(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	cfg.SpawnIntervalRange = IntRange{Min: 1, Max: 1}
	d := m.addDrill(env, "d1", world.Cell{X: 4, Y: 4}, &cfg)
	m.deposits[d.Position] = deposit{kind: iron, count: 1000}

	m.unpowered[d.ID] = true
	if _, fired := d.Tick(1.0); fired || d.TicksUntilSpawn() != 1 {
		t.Fatalf("unpowered drill must not count down")
	}
	m.unpowered[d.ID] = false
	d.DeSpawn()
	if d.CanDrillNow() {
		t.Fatalf("despawned drill must not drill")
	}
}

func TestCanDrillNow_BaseResourceKeepsDrillOperable(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	d := m.addDrill(env, "d1", world.Cell{X: 4, Y: 4}, nil)
	if d.CanDrillNow() {
		t.Fatalf("no deposit and no base resource: drill must idle")
	}
	m.base = &stone
	if !d.CanDrillNow() {
		t.Fatalf("base resource must keep the drill operable")
	}
}

func TestPostSpawnSetup_ResamplesOnlyOnFirstPlacement(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{n: 5})
	cfg := DefaultConfig()
	cfg.SpawnIntervalRange = IntRange{Min: 10, Max: 20}

	d := New("d1", world.Cell{}, &cfg, env)
	d.PostSpawnSetup(false)
	if d.TicksUntilSpawn() != 15 {
		t.Fatalf("expected draw 10+5, got %d", d.TicksUntilSpawn())
	}

	restored := New("d1", world.Cell{}, &cfg, env)
	restored.LoadState(State{"ticksUntilSpawn": 7})
	restored.PostSpawnSetup(true)
	if restored.TicksUntilSpawn() != 7 {
		t.Fatalf("expected restored countdown 7, got %d", restored.TicksUntilSpawn())
	}
}
