package memory

import (
	"context"

	"autodrill/internal/app/ports"
)

type DepositCellRepo struct {
	store *Store
}

func NewDepositCellRepo(store *Store) DepositCellRepo {
	return DepositCellRepo{store: store}
}

func (r DepositCellRepo) ReplaceAll(_ context.Context, colonyID string, cells []ports.DepositCellRecord) error {
	r.store.deposits[colonyID] = append([]ports.DepositCellRecord(nil), cells...)
	return nil
}

func (r DepositCellRepo) ListByColony(_ context.Context, colonyID string) ([]ports.DepositCellRecord, error) {
	return append([]ports.DepositCellRecord(nil), r.store.deposits[colonyID]...), nil
}
