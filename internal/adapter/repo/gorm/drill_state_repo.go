package gormrepo

import (
	"context"
	"encoding/json"
	"time"

	"autodrill/internal/adapter/repo/gorm/model"
	"autodrill/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DrillStateRepo struct {
	db *gorm.DB
}

func NewDrillStateRepo(db *gorm.DB) DrillStateRepo {
	return DrillStateRepo{db: db}
}

// Save upserts one drill. Seq keeps the order drills were first saved in so
// a load restores them in placement order.
func (r DrillStateRepo) Save(ctx context.Context, record ports.DrillStateRecord) error {
	db := dbFromContext(ctx, r.db)
	b, err := encodeSaveData(record.Values)
	if err != nil {
		return err
	}
	var seq int64
	if err := db.Model(&model.DrillState{}).
		Where("colony_id = ?", record.ColonyID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&seq).Error; err != nil {
		return err
	}
	row := model.DrillState{
		ColonyID:  record.ColonyID,
		DrillID:   record.DrillID,
		Kind:      record.Kind,
		X:         int32(record.X),
		Y:         int32(record.Y),
		Active:    record.Active,
		Powered:   record.Powered,
		Seq:       seq + 1,
		SaveData:  b,
		UpdatedAt: time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "colony_id"}, {Name: "drill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "x", "y", "active", "powered", "save_data", "updated_at"}),
	}).Create(&row).Error
}

func (r DrillStateRepo) ListByColony(ctx context.Context, colonyID string) ([]ports.DrillStateRecord, error) {
	var rows []model.DrillState
	if err := dbFromContext(ctx, r.db).
		Where("colony_id = ?", colonyID).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.DrillStateRecord, 0, len(rows))
	for _, row := range rows {
		values, err := decodeSaveData(row.SaveData)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.DrillStateRecord{
			ColonyID: row.ColonyID,
			DrillID:  row.DrillID,
			Kind:     row.Kind,
			X:        int(row.X),
			Y:        int(row.Y),
			Active:   row.Active,
			Powered:  row.Powered,
			Values:   values,
		})
	}
	return out, nil
}

func (r DrillStateRepo) DeleteByColony(ctx context.Context, colonyID string) error {
	return dbFromContext(ctx, r.db).Where("colony_id = ?", colonyID).Delete(&model.DrillState{}).Error
}

func encodeSaveData(values map[string]int) ([]byte, error) {
	if values == nil {
		values = map[string]int{}
	}
	return json.Marshal(values)
}

func decodeSaveData(data []byte) (map[string]int, error) {
	out := map[string]int{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
