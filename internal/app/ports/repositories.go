package ports

import "context"

// DrillStateRecord is one saved drill: its placement plus the integer values
// the drill wrote under its save keys.
type DrillStateRecord struct {
	ColonyID string
	DrillID  string
	Kind     string
	X        int
	Y        int
	Active   bool
	Powered  bool
	Values   map[string]int
}

type DrillStateRepository interface {
	Save(ctx context.Context, record DrillStateRecord) error
	ListByColony(ctx context.Context, colonyID string) ([]DrillStateRecord, error)
	DeleteByColony(ctx context.Context, colonyID string) error
}

type DepositCellRecord struct {
	X       int
	Y       int
	DefName string
	Count   int
}

type DepositCellRepository interface {
	ReplaceAll(ctx context.Context, colonyID string, cells []DepositCellRecord) error
	ListByColony(ctx context.Context, colonyID string) ([]DepositCellRecord, error)
}
