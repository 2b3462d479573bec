package drill

import "autodrill/internal/domain/world"

// Drill is one placed auto deep drill. The host owns placement and power; the
// drill owns its spawn countdown.
type Drill struct {
	ID       string
	Position world.Cell
	Spawned  bool

	cfg             *Config
	env             *Env
	ticksUntilSpawn int
}

func New(id string, pos world.Cell, cfg *Config, env *Env) *Drill {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	return &Drill{ID: id, Position: pos, cfg: cfg, env: env}
}

func (d *Drill) Config() Config {
	return *d.cfg
}

func (d *Drill) TicksUntilSpawn() int {
	return d.ticksUntilSpawn
}

// PostSpawnSetup marks the drill as placed. The countdown is drawn only on
// first placement; a drill respawning after load keeps its restored value.
func (d *Drill) PostSpawnSetup(respawningAfterLoad bool) {
	d.Spawned = true
	if !respawningAfterLoad {
		d.ResetTimer()
	}
}

func (d *Drill) DeSpawn() {
	d.Spawned = false
}

func (d *Drill) ResetTimer() {
	d.ticksUntilSpawn = d.cfg.SpawnIntervalRange.RandomInRange(d.env.rng())
}

func (d *Drill) powered() bool {
	if d.env == nil || d.env.Power == nil {
		return false
	}
	return d.env.Power.IsPowered(d)
}

// CanDrillNow reports whether the countdown should run. With a map base
// resource present the drill always runs and falls back to chunks when the
// deposits below are gone.
func (d *Drill) CanDrillNow() bool {
	if !d.Spawned || !d.powered() {
		return false
	}
	if _, ok := d.env.baseResource(); ok {
		return true
	}
	return d.ValuableResourcesPresent()
}

// Tick is the fine-grained host tick.
func (d *Drill) Tick(yieldFactor float64) (SpawnResult, bool) {
	return d.TickInterval(1, yieldFactor)
}

// TickRare is the batched host tick.
func (d *Drill) TickRare(yieldFactor float64) (SpawnResult, bool) {
	return d.TickInterval(world.RareTickInterval, yieldFactor)
}

// TickInterval advances the countdown by interval ticks and fires an
// extraction once it reaches zero. The bool reports whether it fired.
func (d *Drill) TickInterval(interval int, yieldFactor float64) (SpawnResult, bool) {
	if !d.CanDrillNow() {
		return SpawnResult{}, false
	}
	d.ticksUntilSpawn -= interval
	if d.ticksUntilSpawn > 0 {
		return SpawnResult{}, false
	}
	res := d.TrySpawn(yieldFactor)
	d.ResetTimer()
	return res, true
}
