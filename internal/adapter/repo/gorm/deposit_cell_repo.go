package gormrepo

import (
	"context"

	"autodrill/internal/adapter/repo/gorm/model"
	"autodrill/internal/app/ports"

	"gorm.io/gorm"
)

const depositBatchSize = 500

type DepositCellRepo struct {
	db *gorm.DB
}

func NewDepositCellRepo(db *gorm.DB) DepositCellRepo {
	return DepositCellRepo{db: db}
}

func (r DepositCellRepo) ReplaceAll(ctx context.Context, colonyID string, cells []ports.DepositCellRecord) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("colony_id = ?", colonyID).Delete(&model.DepositCell{}).Error; err != nil {
		return err
	}
	if len(cells) == 0 {
		return nil
	}
	rows := make([]model.DepositCell, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, model.DepositCell{
			ColonyID: colonyID,
			X:        int32(c.X),
			Y:        int32(c.Y),
			DefName:  c.DefName,
			Count:    int32(c.Count),
		})
	}
	return db.CreateInBatches(rows, depositBatchSize).Error
}

func (r DepositCellRepo) ListByColony(ctx context.Context, colonyID string) ([]ports.DepositCellRecord, error) {
	var rows []model.DepositCell
	if err := dbFromContext(ctx, r.db).
		Where("colony_id = ?", colonyID).
		Order("y ASC, x ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.DepositCellRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.DepositCellRecord{X: int(row.X), Y: int(row.Y), DefName: row.DefName, Count: int(row.Count)})
	}
	return out, nil
}
