package colony

import (
	"context"

	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

// AdvanceTicks runs n host ticks. Normal-ticker drills tick every tick, rare
// ones every RareTickInterval ticks. Drills are visited in placement order, so
// a drill earlier in the list can deplete a cell before a later one scans it.
func (c *Colony) AdvanceTicks(ctx context.Context, n int) (TickReport, error) {
	if n <= 0 {
		return TickReport{}, ErrInvalidRequest
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	report := TickReport{FromTick: c.clock.Ticks()}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			report.ToTick = c.clock.Ticks()
			return report, err
		}
		tick := c.clock.Advance()
		rare := world.IsRareTick(tick)
		for _, d := range c.drills {
			var (
				res   drill.SpawnResult
				fired bool
			)
			switch d.Config().TickerType {
			case drill.TickerRare:
				if !rare {
					continue
				}
				res, fired = d.TickRare(c.deps.YieldFactor)
			default:
				res, fired = d.Tick(c.deps.YieldFactor)
			}
			if !fired {
				continue
			}
			report.Fired = append(report.Fired, FiredSpawn{Tick: tick, DrillID: d.ID, Result: res})
			c.recordSpawn(d.ID, res)
		}
	}
	report.ToTick = c.clock.Ticks()
	if c.deps.Metrics != nil {
		c.deps.Metrics.RecordTicks(n)
	}
	return report, nil
}

// ForceSpawn runs an extraction immediately and resets the drill's timer.
func (c *Colony) ForceSpawn(_ context.Context, id string) (drill.SpawnResult, error) {
	if !c.deps.DevMode {
		return drill.SpawnResult{}, ErrDevModeRequired
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.lookup(id)
	if err != nil {
		return drill.SpawnResult{}, err
	}
	cmds := d.DebugCommands(true, c.deps.YieldFactor)
	if len(cmds) == 0 {
		return drill.SpawnResult{}, nil
	}
	res := cmds[0].Action()
	c.recordSpawn(d.ID, res)
	return res, nil
}

func (c *Colony) recordSpawn(id string, res drill.SpawnResult) {
	if c.deps.Metrics == nil {
		return
	}
	c.deps.Metrics.RecordSpawn(id, res)
}
