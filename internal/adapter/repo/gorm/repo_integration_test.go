package gormrepo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"autodrill/internal/app/ports"
)

var (
	_ ports.DrillStateRepository  = DrillStateRepo{}
	_ ports.DepositCellRepository = DepositCellRepo{}
	_ ports.TxManager             = TxManager{}
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("AUTODRILL_DB_DSN")
	if dsn == "" {
		t.Skip("AUTODRILL_DB_DSN is required for integration test")
	}
	return dsn
}

func migrationsFS(t *testing.T) fs.FS {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve test file path")
	}
	return os.DirFS(filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "db", "migrations"))
}

func TestDrillStateRepo_RoundTripKeepsOrderAndValues(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if err := ApplyMigrations(ctx, db, migrationsFS(t)); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	colonyID := "it-drill-roundtrip"
	repo := NewDrillStateRepo(db)
	if err := repo.DeleteByColony(ctx, colonyID); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	for _, rec := range []ports.DrillStateRecord{
		{ColonyID: colonyID, DrillID: "z", Kind: "deep", X: 1, Y: 2, Active: true, Powered: true, Values: map[string]int{"ticksUntilSpawn": 40}},
		{ColonyID: colonyID, DrillID: "a", Kind: "deep", X: 3, Y: 4, Active: false, Powered: true, Values: map[string]int{"deep_ticksUntilSpawn": 7}},
	} {
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", rec.DrillID, err)
		}
	}
	got, err := repo.ListByColony(ctx, colonyID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].DrillID != "z" || got[1].DrillID != "a" {
		t.Fatalf("expected save order z,a, got %+v", got)
	}
	if got[1].Values["deep_ticksUntilSpawn"] != 7 || got[1].Active {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
}

func TestDepositCellRepo_ReplaceAllInTx(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if err := ApplyMigrations(ctx, db, migrationsFS(t)); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	colonyID := "it-deposit-replace"
	repo := NewDepositCellRepo(db)
	tx := NewTxManager(db)

	errBoom := errors.New("boom")
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.ReplaceAll(ctx, colonyID, []ports.DepositCellRecord{{X: 1, Y: 1, DefName: "steel", Count: 5}}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		t.Fatalf("first replace: %v", err)
	}
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.ReplaceAll(ctx, colonyID, nil); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected rollback error, got %v", err)
	}
	got, err := repo.ListByColony(ctx, colonyID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].DefName != "steel" || got[0].Count != 5 {
		t.Fatalf("expected rolled-back replace to keep cells, got %+v", got)
	}
}
