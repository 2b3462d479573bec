package colony

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"autodrill/internal/app/ports"
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

var (
	ErrInvalidRequest  = errors.New("invalid colony request")
	ErrUnknownKind     = errors.New("unknown drill kind")
	ErrOutOfBounds     = ports.ErrOutOfBounds
	ErrCellOccupied    = errors.New("cell occupied")
	ErrDevModeRequired = errors.New("developer mode required")
)

type Deps struct {
	ColonyID    string
	Map         ports.MapHost
	Kinds       map[string]drill.Config
	Resources   map[string]world.ResourceKind
	StateRepo   ports.DrillStateRepository
	DepositRepo ports.DepositCellRepository
	TxManager   ports.TxManager
	Metrics     ports.ExtractionMetrics
	Notifier    drill.Notifier
	Seed        int64
	YieldFactor float64
	DevMode     bool
}

// Colony hosts the drills of one map. Every call runs under one lock, so a
// tick batch always completes before another call observes the map.
type Colony struct {
	deps  Deps
	env   *drill.Env
	kinds map[string]*drill.Config

	mu     sync.Mutex
	clock  world.Clock
	drills []*drill.Drill
	byID   map[string]*drill.Drill
	kindOf map[string]string
}

func New(deps Deps) *Colony {
	if strings.TrimSpace(deps.ColonyID) == "" {
		deps.ColonyID = "default"
	}
	if deps.YieldFactor <= 0 {
		deps.YieldFactor = 1
	}
	kinds := make(map[string]*drill.Config, len(deps.Kinds))
	for name, cfg := range deps.Kinds {
		cfg := cfg
		if cfg.TickerType == "" {
			cfg.TickerType = drill.TickerNormal
		}
		kinds[name] = &cfg
	}
	c := &Colony{
		deps:   deps,
		kinds:  kinds,
		byID:   map[string]*drill.Drill{},
		kindOf: map[string]string{},
	}
	c.env = &drill.Env{
		Bounds:   deps.Map.Bounds(),
		Grid:     deps.Map,
		Base:     deps.Map,
		Placer:   deps.Map,
		Power:    deps.Map,
		Siblings: deps.Map,
		Notifier: deps.Notifier,
		Rand:     rand.New(rand.NewSource(deps.Seed)),
	}
	return c
}

func (c *Colony) ID() string {
	return c.deps.ColonyID
}

func (c *Colony) DevMode() bool {
	return c.deps.DevMode
}

// Kinds lists the registered drill kinds with their configuration warnings.
func (c *Colony) Kinds() []KindView {
	out := make([]KindView, 0, len(c.kinds))
	for name, cfg := range c.kinds {
		out = append(out, KindView{Name: name, Config: *cfg, Warnings: cfg.Errors()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ValidateKinds flattens every kind's configuration warnings.
func (c *Colony) ValidateKinds() []string {
	var out []string
	for _, k := range c.Kinds() {
		for _, w := range k.Warnings {
			out = append(out, fmt.Sprintf("%s: %s", k.Name, w))
		}
	}
	return out
}

func (c *Colony) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clock.Ticks()
}

func (c *Colony) lookup(id string) (*drill.Drill, error) {
	d, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("drill %q: %w", id, ports.ErrNotFound)
	}
	return d, nil
}

func (c *Colony) view(d *drill.Drill) DrillView {
	return DrillView{
		ID:              d.ID,
		Kind:            c.kindOf[d.ID],
		Position:        d.Position,
		Active:          c.deps.Map.IsActive(d),
		Powered:         d.Spawned && c.deps.Map.IsPowered(d),
		TicksUntilSpawn: d.TicksUntilSpawn(),
		Target:          d.Locate(),
	}
}
