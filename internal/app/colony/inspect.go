package colony

import (
	"context"

	"autodrill/internal/domain/world"
)

func (c *Colony) Inspect(_ context.Context, id string) (InspectResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.lookup(id)
	if err != nil {
		return InspectResponse{}, err
	}
	resp := InspectResponse{
		Drill:       c.view(d),
		Inspect:     d.InspectString(),
		NextSpawnIn: world.FormatTicks(d.TicksUntilSpawn()),
	}
	for _, cmd := range d.DebugCommands(c.deps.DevMode, c.deps.YieldFactor) {
		resp.DebugCommands = append(resp.DebugCommands, cmd.Label)
	}
	return resp, nil
}
