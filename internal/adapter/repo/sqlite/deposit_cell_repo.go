package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"

	"autodrill/internal/app/ports"
)

type DepositCellRepo struct {
	db *sql.DB
}

func NewDepositCellRepo(db *sql.DB) DepositCellRepo {
	return DepositCellRepo{db: db}
}

func (r DepositCellRepo) ReplaceAll(ctx context.Context, colonyID string, cells []ports.DepositCellRecord) error {
	q := getQuerier(ctx, r.db)
	if _, err := q.ExecContext(ctx, `DELETE FROM deposit_cells WHERE colony_id = ?`, colonyID); err != nil {
		return fmt.Errorf("clear deposits: %w", err)
	}
	for _, c := range cells {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO deposit_cells (colony_id, x, y, def_name, count) VALUES (?, ?, ?, ?, ?)`,
			colonyID, c.X, c.Y, c.DefName, c.Count,
		); err != nil {
			return fmt.Errorf("insert deposit %d,%d: %w", c.X, c.Y, err)
		}
	}
	return nil
}

func (r DepositCellRepo) ListByColony(ctx context.Context, colonyID string) ([]ports.DepositCellRecord, error) {
	rows, err := getQuerier(ctx, r.db).QueryContext(ctx,
		`SELECT x, y, def_name, count FROM deposit_cells WHERE colony_id = ? ORDER BY y, x`, colonyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.DepositCellRecord
	for rows.Next() {
		var c ports.DepositCellRecord
		if err := rows.Scan(&c.X, &c.Y, &c.DefName, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
