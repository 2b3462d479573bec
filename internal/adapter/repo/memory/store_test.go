package memory

import (
	"context"
	"errors"
	"testing"

	"autodrill/internal/app/ports"
)

var (
	_ ports.DrillStateRepository  = DrillStateRepo{}
	_ ports.DepositCellRepository = DepositCellRepo{}
	_ ports.TxManager             = TxManager{}
)

func TestDrillStateRepo_SaveKeepsFirstSaveOrder(t *testing.T) {
	store := NewStore()
	repo := NewDrillStateRepo(store)
	ctx := context.Background()
	for _, id := range []string{"b", "a", "b"} {
		if err := repo.Save(ctx, ports.DrillStateRecord{ColonyID: "c1", DrillID: id, Values: map[string]int{"ticksUntilSpawn": len(id)}}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	got, err := repo.ListByColony(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].DrillID != "b" || got[1].DrillID != "a" {
		t.Fatalf("unexpected records: %+v", got)
	}
	got[0].Values["ticksUntilSpawn"] = 99
	again, _ := repo.ListByColony(ctx, "c1")
	if again[0].Values["ticksUntilSpawn"] != 1 {
		t.Fatalf("listed values must be copies")
	}
}

func TestDrillStateRepo_DeleteByColonyIsScoped(t *testing.T) {
	store := NewStore()
	repo := NewDrillStateRepo(store)
	ctx := context.Background()
	_ = repo.Save(ctx, ports.DrillStateRecord{ColonyID: "c1", DrillID: "a"})
	_ = repo.Save(ctx, ports.DrillStateRecord{ColonyID: "c2", DrillID: "a"})
	if err := repo.DeleteByColony(ctx, "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := repo.ListByColony(ctx, "c1"); len(got) != 0 {
		t.Fatalf("expected c1 empty, got %+v", got)
	}
	if got, _ := repo.ListByColony(ctx, "c2"); len(got) != 1 {
		t.Fatalf("expected c2 untouched, got %+v", got)
	}
}

func TestDepositCellRepo_ReplaceAll(t *testing.T) {
	store := NewStore()
	repo := NewDepositCellRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.ReplaceAll(ctx, "c1", []ports.DepositCellRecord{{X: 1, Y: 2, DefName: "steel", Count: 3}}); err != nil {
			return err
		}
		return repo.ReplaceAll(ctx, "c1", []ports.DepositCellRecord{{X: 4, Y: 5, DefName: "gold", Count: 6}})
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	got, err := repo.ListByColony(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].DefName != "gold" {
		t.Fatalf("expected replaced cells, got %+v", got)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	states := NewDrillStateRepo(store)
	deposits := NewDepositCellRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := states.Save(ctx, ports.DrillStateRecord{ColonyID: "c1", DrillID: "a", Values: map[string]int{"ticksUntilSpawn": 5}}); err != nil {
			return err
		}
		return deposits.ReplaceAll(ctx, "c1", []ports.DepositCellRecord{{X: 1, Y: 1, DefName: "steel", Count: 3}})
	}); err != nil {
		t.Fatalf("seed tx: %v", err)
	}

	errBoom := errors.New("boom")
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		_ = states.DeleteByColony(ctx, "c1")
		_ = deposits.ReplaceAll(ctx, "c1", nil)
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}

	recs, _ := states.ListByColony(ctx, "c1")
	if len(recs) != 1 || recs[0].Values["ticksUntilSpawn"] != 5 {
		t.Fatalf("expected drill state restored, got %+v", recs)
	}
	cells, _ := deposits.ListByColony(ctx, "c1")
	if len(cells) != 1 || cells[0].DefName != "steel" {
		t.Fatalf("expected deposits restored, got %+v", cells)
	}
}
