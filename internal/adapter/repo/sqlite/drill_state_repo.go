package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"autodrill/internal/app/ports"
)

type DrillStateRepo struct {
	db *sql.DB
}

func NewDrillStateRepo(db *sql.DB) DrillStateRepo {
	return DrillStateRepo{db: db}
}

func (r DrillStateRepo) Save(ctx context.Context, record ports.DrillStateRecord) error {
	values := record.Values
	if values == nil {
		values = map[string]int{}
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal save data: %w", err)
	}
	q := getQuerier(ctx, r.db)
	var seq int64
	if err := q.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM drill_states WHERE colony_id = ?`, record.ColonyID,
	).Scan(&seq); err != nil {
		return fmt.Errorf("next drill seq: %w", err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO drill_states (colony_id, drill_id, kind, x, y, active, powered, seq, save_data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (colony_id, drill_id) DO UPDATE SET
			kind = excluded.kind, x = excluded.x, y = excluded.y,
			active = excluded.active, powered = excluded.powered,
			save_data = excluded.save_data, updated_at = excluded.updated_at
	`, record.ColonyID, record.DrillID, record.Kind, record.X, record.Y,
		record.Active, record.Powered, seq+1, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save drill state: %w", err)
	}
	return nil
}

func (r DrillStateRepo) ListByColony(ctx context.Context, colonyID string) ([]ports.DrillStateRecord, error) {
	rows, err := getQuerier(ctx, r.db).QueryContext(ctx, `
		SELECT drill_id, kind, x, y, active, powered, save_data
		FROM drill_states WHERE colony_id = ? ORDER BY seq ASC
	`, colonyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.DrillStateRecord
	for rows.Next() {
		rec := ports.DrillStateRecord{ColonyID: colonyID}
		var payload string
		if err := rows.Scan(&rec.DrillID, &rec.Kind, &rec.X, &rec.Y, &rec.Active, &rec.Powered, &payload); err != nil {
			return nil, err
		}
		rec.Values = map[string]int{}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &rec.Values); err != nil {
				return nil, fmt.Errorf("decode save data for %s: %w", rec.DrillID, err)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r DrillStateRepo) DeleteByColony(ctx context.Context, colonyID string) error {
	_, err := getQuerier(ctx, r.db).ExecContext(ctx, `DELETE FROM drill_states WHERE colony_id = ?`, colonyID)
	return err
}
