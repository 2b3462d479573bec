package colony

import (
	"context"
	"errors"
	"fmt"

	"autodrill/internal/app/ports"
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

// Save writes every drill's saved values and the deposit grid in one transaction.
func (c *Colony) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deps.StateRepo == nil || c.deps.DepositRepo == nil {
		return fmt.Errorf("save colony: %w", ports.ErrNotFound)
	}
	return c.runInTx(ctx, func(ctx context.Context) error {
		if err := c.deps.StateRepo.DeleteByColony(ctx, c.deps.ColonyID); err != nil {
			return fmt.Errorf("clear drill states: %w", err)
		}
		for _, d := range c.drills {
			state := drill.State{}
			d.SaveState(state)
			rec := ports.DrillStateRecord{
				ColonyID: c.deps.ColonyID,
				DrillID:  d.ID,
				Kind:     c.kindOf[d.ID],
				X:        d.Position.X,
				Y:        d.Position.Y,
				Active:   c.deps.Map.IsActive(d),
				Powered:  c.deps.Map.IsConnected(d),
				Values:   state,
			}
			if err := c.deps.StateRepo.Save(ctx, rec); err != nil {
				return fmt.Errorf("save drill %s: %w", d.ID, err)
			}
		}
		if err := c.deps.DepositRepo.ReplaceAll(ctx, c.deps.ColonyID, c.deps.Map.DepositCells()); err != nil {
			return fmt.Errorf("save deposits: %w", err)
		}
		return nil
	})
}

// Load replaces the colony's drills and deposit grid with the saved ones.
// Restored drills keep their saved countdown.
func (c *Colony) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deps.StateRepo == nil || c.deps.DepositRepo == nil {
		return fmt.Errorf("load colony: %w", ports.ErrNotFound)
	}
	var (
		records []ports.DrillStateRecord
		cells   []ports.DepositCellRecord
	)
	err := c.runInTx(ctx, func(ctx context.Context) error {
		var err error
		records, err = c.deps.StateRepo.ListByColony(ctx, c.deps.ColonyID)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("list drill states: %w", err)
		}
		cells, err = c.deps.DepositRepo.ListByColony(ctx, c.deps.ColonyID)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("list deposits: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := c.checkRestorable(records); err != nil {
		return err
	}

	prev := c.snapshot()
	c.teardown()
	c.deps.Map.ResetDeposits(cells, c.deps.Resources)
	for _, rec := range records {
		d := drill.New(rec.DrillID, world.Cell{X: rec.X, Y: rec.Y}, c.kinds[rec.Kind], c.env)
		d.LoadState(drill.State(rec.Values))
		if err := c.deps.Map.Register(d); err != nil {
			c.teardown()
			c.restore(prev)
			return fmt.Errorf("restore drill %s: %w", rec.DrillID, err)
		}
		c.deps.Map.SetActive(d, rec.Active)
		c.deps.Map.SetPowered(d, rec.Powered)
		c.track(d, rec.Kind)
		d.PostSpawnSetup(true)
	}
	return nil
}

// checkRestorable rejects a save the current map cannot hold before any
// live state is touched.
func (c *Colony) checkRestorable(records []ports.DrillStateRecord) error {
	bounds := c.deps.Map.Bounds()
	ids := make(map[string]bool, len(records))
	cells := make(map[world.Cell]string, len(records))
	for _, rec := range records {
		if _, ok := c.kinds[rec.Kind]; !ok {
			return fmt.Errorf("drill %s kind %q: %w", rec.DrillID, rec.Kind, ErrUnknownKind)
		}
		pos := world.Cell{X: rec.X, Y: rec.Y}
		if !bounds.InBounds(pos) {
			return fmt.Errorf("drill %s at %d,%d: %w", rec.DrillID, rec.X, rec.Y, ErrOutOfBounds)
		}
		if ids[rec.DrillID] {
			return fmt.Errorf("drill %s saved twice: %w", rec.DrillID, ports.ErrConflict)
		}
		if other, taken := cells[pos]; taken {
			return fmt.Errorf("drills %s and %s at %d,%d: %w", other, rec.DrillID, rec.X, rec.Y, ErrCellOccupied)
		}
		ids[rec.DrillID] = true
		cells[pos] = rec.DrillID
	}
	return nil
}

type placedDrill struct {
	drill     *drill.Drill
	kind      string
	active    bool
	connected bool
}

type colonySnapshot struct {
	drills   []placedDrill
	deposits []ports.DepositCellRecord
}

func (c *Colony) snapshot() colonySnapshot {
	snap := colonySnapshot{deposits: c.deps.Map.DepositCells()}
	for _, d := range c.drills {
		snap.drills = append(snap.drills, placedDrill{
			drill:     d,
			kind:      c.kindOf[d.ID],
			active:    c.deps.Map.IsActive(d),
			connected: c.deps.Map.IsConnected(d),
		})
	}
	return snap
}

func (c *Colony) teardown() {
	for _, d := range c.drills {
		d.DeSpawn()
		c.deps.Map.Unregister(d)
	}
	c.drills = nil
	c.byID = map[string]*drill.Drill{}
	c.kindOf = map[string]string{}
}

// restore puts back drills and deposits captured by snapshot. The drills
// were registered on this map before, so Register cannot fail here.
func (c *Colony) restore(snap colonySnapshot) {
	c.deps.Map.ResetDeposits(snap.deposits, c.deps.Resources)
	for _, p := range snap.drills {
		if err := c.deps.Map.Register(p.drill); err != nil {
			continue
		}
		c.deps.Map.SetActive(p.drill, p.active)
		c.deps.Map.SetPowered(p.drill, p.connected)
		c.track(p.drill, p.kind)
		p.drill.PostSpawnSetup(true)
	}
}

func (c *Colony) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.deps.TxManager == nil {
		return fn(ctx)
	}
	return c.deps.TxManager.RunInTx(ctx, fn)
}
