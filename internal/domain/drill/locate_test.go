package drill

import (
	"testing"

	"autodrill/internal/domain/world"
)

func TestLocate_ReturnsNearestCellInScanOrder(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	d := m.addDrill(env, "d1", world.Cell{X: 10, Y: 10}, &cfg)

	m.deposits[world.Cell{X: 12, Y: 10}] = deposit{kind: iron, count: 10}
	m.deposits[world.Cell{X: 11, Y: 10}] = deposit{kind: iron, count: 20}
	m.deposits[world.Cell{X: 10, Y: 9}] = deposit{kind: iron, count: 30}

	for i := 0; i < 5; i++ {
		got := d.Locate()
		if !got.Found {
			t.Fatalf("expected deposit found")
		}
		if got.Cell != (world.Cell{X: 10, Y: 9}) || got.Count != 30 {
			t.Fatalf("expected tie-break to pick (10,9), got %+v", got)
		}
	}
}

func TestLocate_RespectsScanRadiusAndBounds(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	cfg.ScanRadius = 1
	d := m.addDrill(env, "d1", world.Cell{X: 0, Y: 0}, &cfg)
	m.deposits[world.Cell{X: 2, Y: 0}] = deposit{kind: iron, count: 10}

	if d.ValuableResourcesPresent() {
		t.Fatalf("deposit outside radius must not be found")
	}
}

func TestLocate_ClampsOversizedRadius(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	cfg.ScanRadius = 7
	d := m.addDrill(env, "d1", world.Cell{X: 20, Y: 20}, &cfg)
	m.deposits[world.Cell{X: 26, Y: 20}] = deposit{kind: iron, count: 10}

	if d.ValuableResourcesPresent() {
		t.Fatalf("radius above %d must be clamped", MaxScanRadius)
	}
}

func TestLocate_FallsBackToBaseResource(t *testing.T) {
	m := newFakeMap()
	m.base = &stone
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	d := m.addDrill(env, "d1", world.Cell{X: 5, Y: 5}, &cfg)

	got := d.Locate()
	if got.Found {
		t.Fatalf("expected found=false")
	}
	if !got.HasKind || got.Kind != stone {
		t.Fatalf("expected base resource, got %+v", got)
	}
	if got.Count != Unlimited {
		t.Fatalf("expected unlimited count, got %d", got.Count)
	}
	if got.Cell != d.Position {
		t.Fatalf("expected drill position, got %+v", got.Cell)
	}
}

func TestLocate_NoDepositNoBase(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	d := m.addDrill(env, "d1", world.Cell{X: 5, Y: 5}, nil)

	if got := d.Locate(); got.HasKind || got.Found {
		t.Fatalf("expected nothing resolved, got %+v", got)
	}
}
