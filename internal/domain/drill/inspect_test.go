package drill

import (
	"strings"
	"testing"

	"autodrill/internal/domain/world"
)

func TestInspectString(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	d := m.addDrill(env, "d1", world.Cell{X: 2, Y: 2}, &cfg)

	if got := d.InspectString(); got != "No resources below." {
		t.Fatalf("unexpected inspect string %q", got)
	}

	m.deposits[d.Position] = deposit{kind: iron, count: 10}
	got := d.InspectString()
	if !strings.HasPrefix(got, "Resource below: Steel") || !strings.Contains(got, "1.0 hours") {
		t.Fatalf("unexpected inspect string %q", got)
	}

	m.unpowered[d.ID] = true
	if got := d.InspectString(); got != "" {
		t.Fatalf("unpowered drill must not report, got %q", got)
	}
}

func TestDebugCommands(t *testing.T) {
	m := newFakeMap()
	env := m.env(fixedRand{})
	cfg := DefaultConfig()
	d := m.addDrill(env, "d1", world.Cell{X: 2, Y: 2}, &cfg)

	if cmds := d.DebugCommands(false, 1); len(cmds) != 0 {
		t.Fatalf("commands must be hidden outside dev mode")
	}
	cmds := d.DebugCommands(true, 1)
	if len(cmds) != 1 || cmds[0].Label != "DEBUG: No resources below" {
		t.Fatalf("unexpected commands %+v", cmds)
	}

	m.deposits[d.Position] = deposit{kind: iron, count: 500}
	d.ticksUntilSpawn = 1
	cmds = d.DebugCommands(true, 1)
	if cmds[0].Label != "DEBUG: Drill steel" {
		t.Fatalf("unexpected label %q", cmds[0].Label)
	}
	res := cmds[0].Action()
	if res.Outcome != OutcomeValuable || len(m.placed) != 1 {
		t.Fatalf("expected forced extraction, got %+v", res)
	}
	if d.TicksUntilSpawn() != 2500 {
		t.Fatalf("expected timer reset after forced extraction, got %d", d.TicksUntilSpawn())
	}
}
