package ports

import (
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

// MapHost is the simulated map drills are placed on.
type MapHost interface {
	drill.DepositGrid
	drill.BaseResourceProvider
	drill.Placer
	drill.PowerSignal
	drill.SiblingRegistry

	Bounds() world.Bounds
	Register(d *drill.Drill) error
	Unregister(d *drill.Drill)
	SetPowered(d *drill.Drill, on bool)
	IsActive(d *drill.Drill) bool
	IsConnected(d *drill.Drill) bool
	DepositCells() []DepositCellRecord
	ResetDeposits(cells []DepositCellRecord, kinds map[string]world.ResourceKind)
	Items() []PlacedItem
}

type PlacedItem struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}
