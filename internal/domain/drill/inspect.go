package drill

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"autodrill/internal/domain/world"
)

// InspectString is the status line shown for a running drill. It is empty
// while the drill is unplaced or unpowered.
func (d *Drill) InspectString() string {
	if !d.Spawned || !d.powered() {
		return ""
	}
	t := d.Locate()
	if !t.HasKind {
		return "No resources below."
	}
	var b strings.Builder
	b.WriteString("Resource below: ")
	b.WriteString(capitalize(t.Kind.Label))
	b.WriteString("\nNext ")
	b.WriteString(t.Kind.Label)
	b.WriteString(" in ")
	b.WriteString(world.FormatTicks(d.ticksUntilSpawn))
	return b.String()
}

type Command struct {
	Label  string
	Action func() SpawnResult
}

// DebugCommands exposes a manual extraction trigger in developer mode.
func (d *Drill) DebugCommands(devMode bool, yieldFactor float64) []Command {
	if !devMode {
		return nil
	}
	t := d.Locate()
	if !t.HasKind {
		return []Command{{
			Label:  "DEBUG: No resources below",
			Action: func() SpawnResult { return SpawnResult{Outcome: OutcomeNoResource} },
		}}
	}
	return []Command{{
		Label: "DEBUG: Drill " + t.Kind.Label,
		Action: func() SpawnResult {
			res := d.TrySpawn(yieldFactor)
			d.ResetTimer()
			return res
		},
	}}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
