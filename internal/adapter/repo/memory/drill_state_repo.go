package memory

import (
	"context"

	"autodrill/internal/app/ports"
)

type DrillStateRepo struct {
	store *Store
}

func NewDrillStateRepo(store *Store) DrillStateRepo {
	return DrillStateRepo{store: store}
}

func (r DrillStateRepo) Save(_ context.Context, record ports.DrillStateRecord) error {
	byID, ok := r.store.drills[record.ColonyID]
	if !ok {
		byID = make(map[string]ports.DrillStateRecord)
		r.store.drills[record.ColonyID] = byID
	}
	if _, exists := byID[record.DrillID]; !exists {
		r.store.order[record.ColonyID] = append(r.store.order[record.ColonyID], record.DrillID)
	}
	record.Values = copyValues(record.Values)
	byID[record.DrillID] = record
	return nil
}

// ListByColony returns records in the order they were first saved.
func (r DrillStateRepo) ListByColony(_ context.Context, colonyID string) ([]ports.DrillStateRecord, error) {
	byID := r.store.drills[colonyID]
	out := make([]ports.DrillStateRecord, 0, len(byID))
	for _, id := range r.store.order[colonyID] {
		rec := byID[id]
		rec.Values = copyValues(rec.Values)
		out = append(out, rec)
	}
	return out, nil
}

func (r DrillStateRepo) DeleteByColony(_ context.Context, colonyID string) error {
	delete(r.store.drills, colonyID)
	delete(r.store.order, colonyID)
	return nil
}

func copyValues(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
