package colony

import (
	"context"
	"fmt"
	"strings"

	"autodrill/internal/app/ports"
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

func (c *Colony) PlaceDrill(_ context.Context, req PlaceRequest) (DrillView, error) {
	req.DrillID = strings.TrimSpace(req.DrillID)
	if req.DrillID == "" {
		return DrillView{}, ErrInvalidRequest
	}
	cfg, ok := c.kinds[req.Kind]
	if !ok {
		return DrillView{}, fmt.Errorf("%q: %w", req.Kind, ErrUnknownKind)
	}
	pos := world.Cell{X: req.X, Y: req.Y}
	if !c.env.Bounds.InBounds(pos) {
		return DrillView{}, ErrOutOfBounds
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byID[req.DrillID]; exists {
		return DrillView{}, fmt.Errorf("drill %q: %w", req.DrillID, ports.ErrConflict)
	}
	if _, taken := c.deps.Map.FirstDrillAt(pos); taken {
		return DrillView{}, fmt.Errorf("%d,%d: %w", pos.X, pos.Y, ErrCellOccupied)
	}
	d := drill.New(req.DrillID, pos, cfg, c.env)
	if err := c.deps.Map.Register(d); err != nil {
		return DrillView{}, err
	}
	c.track(d, req.Kind)
	d.PostSpawnSetup(false)
	return c.view(d), nil
}

func (c *Colony) RemoveDrill(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.lookup(id)
	if err != nil {
		return err
	}
	d.DeSpawn()
	c.deps.Map.Unregister(d)
	delete(c.byID, d.ID)
	delete(c.kindOf, d.ID)
	for i, other := range c.drills {
		if other == d {
			c.drills = append(c.drills[:i], c.drills[i+1:]...)
			break
		}
	}
	return nil
}

// SetPower connects or disconnects a drill from the power grid.
func (c *Colony) SetPower(_ context.Context, id string, on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.lookup(id)
	if err != nil {
		return err
	}
	c.deps.Map.SetPowered(d, on)
	return nil
}

// SetActive flips a drill's operation switch, e.g. to restart a drill the
// exhaustion sweep switched off.
func (c *Colony) SetActive(_ context.Context, id string, on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.lookup(id)
	if err != nil {
		return err
	}
	c.deps.Map.SetActive(d, on)
	return nil
}

func (c *Colony) List(_ context.Context) []DrillView {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DrillView, 0, len(c.drills))
	for _, d := range c.drills {
		out = append(out, c.view(d))
	}
	return out
}

func (c *Colony) Items(_ context.Context) []ports.PlacedItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deps.Map.Items()
}

func (c *Colony) track(d *drill.Drill, kind string) {
	c.drills = append(c.drills, d)
	c.byID[d.ID] = d
	c.kindOf[d.ID] = kind
}
