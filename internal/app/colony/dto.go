package colony

import (
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

type PlaceRequest struct {
	DrillID string
	Kind    string
	X       int
	Y       int
}

type DrillView struct {
	ID              string       `json:"id"`
	Kind            string       `json:"kind"`
	Position        world.Cell   `json:"position"`
	Active          bool         `json:"active"`
	Powered         bool         `json:"powered"`
	TicksUntilSpawn int          `json:"ticks_until_spawn"`
	Target          drill.Target `json:"target"`
}

type InspectResponse struct {
	Drill         DrillView `json:"drill"`
	Inspect       string    `json:"inspect"`
	NextSpawnIn   string    `json:"next_spawn_in"`
	DebugCommands []string  `json:"debug_commands,omitempty"`
}

type FiredSpawn struct {
	Tick    int64             `json:"tick"`
	DrillID string            `json:"drill_id"`
	Result  drill.SpawnResult `json:"result"`
}

type TickReport struct {
	FromTick int64        `json:"from_tick"`
	ToTick   int64        `json:"to_tick"`
	Fired    []FiredSpawn `json:"fired"`
}

type KindView struct {
	Name     string       `json:"name"`
	Config   drill.Config `json:"config"`
	Warnings []string     `json:"warnings,omitempty"`
}
