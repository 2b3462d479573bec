package runtime

import (
	"fmt"
	"sort"
	"sync"

	"autodrill/internal/app/ports"
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"
)

type Config struct {
	Width  int
	Height int
	// BaseResource is produced as chunks once the deposits below a drill are
	// gone. A zero kind means the map has none.
	BaseResource     world.ResourceKind
	Layers           []DepositLayer
	Seed             int
	StackLimit       int
	PoweredByDefault bool
}

type drillSlot struct {
	drill     *drill.Drill
	active    bool
	connected bool
}

type deposit struct {
	kind  world.ResourceKind
	count int
}

// Map is an in-memory colony map: the deep deposit layer, drill slots, and
// the items drills dropped on the surface.
type Map struct {
	cfg Config

	mu       sync.Mutex
	deposits map[world.Cell]deposit
	slots    map[*drill.Drill]*drillSlot
	byCell   map[world.Cell]*drill.Drill
	items    map[world.Cell]world.ItemStack
}

func DefaultConfig() Config {
	return Config{
		Width:            64,
		Height:           64,
		BaseResource:     Stone,
		Layers:           DefaultLayers(),
		Seed:             0,
		StackLimit:       75,
		PoweredByDefault: true,
	}
}

func NewProvider(cfg Config) *Map {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.StackLimit <= 0 {
		cfg.StackLimit = def.StackLimit
	}
	m := &Map{
		cfg:      cfg,
		deposits: map[world.Cell]deposit{},
		slots:    map[*drill.Drill]*drillSlot{},
		byCell:   map[world.Cell]*drill.Drill{},
		items:    map[world.Cell]world.ItemStack{},
	}
	for c, d := range generateDeposits(m.Bounds(), cfg.Layers, cfg.Seed) {
		m.deposits[c] = d
	}
	return m
}

func (m *Map) Bounds() world.Bounds {
	return world.Bounds{Width: m.cfg.Width, Height: m.cfg.Height}
}

func (m *Map) KindAt(c world.Cell) (world.ResourceKind, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deposits[c]
	return d.kind, ok
}

func (m *Map) CountAt(c world.Cell) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deposits[c].count
}

func (m *Map) SetAt(c world.Cell, kind world.ResourceKind, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if count <= 0 || kind.IsZero() {
		delete(m.deposits, c)
		return
	}
	m.deposits[c] = deposit{kind: kind, count: count}
}

func (m *Map) BaseResource() (world.ResourceKind, bool) {
	if m.cfg.BaseResource.IsZero() {
		return world.ResourceKind{}, false
	}
	return m.cfg.BaseResource, true
}

func (m *Map) Register(d *drill.Drill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Bounds().InBounds(d.Position) {
		return fmt.Errorf("drill %s at %d,%d: %w", d.ID, d.Position.X, d.Position.Y, ports.ErrOutOfBounds)
	}
	if _, taken := m.byCell[d.Position]; taken {
		return fmt.Errorf("cell %d,%d: %w", d.Position.X, d.Position.Y, ports.ErrConflict)
	}
	m.slots[d] = &drillSlot{drill: d, active: true, connected: m.cfg.PoweredByDefault}
	m.byCell[d.Position] = d
	return nil
}

func (m *Map) Unregister(d *drill.Drill) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slots[d]; !ok {
		return
	}
	delete(m.slots, d)
	if m.byCell[d.Position] == d {
		delete(m.byCell, d.Position)
	}
}

func (m *Map) FirstDrillAt(c world.Cell) (*drill.Drill, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.byCell[c]
	return d, ok
}

// SetActive flips the drill's switch. A switched-off drill reads as unpowered.
func (m *Map) SetActive(d *drill.Drill, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[d]; ok {
		s.active = on
	}
}

func (m *Map) SetPowered(d *drill.Drill, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[d]; ok {
		s.connected = on
	}
}

func (m *Map) IsPowered(d *drill.Drill) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[d]
	return ok && s.connected && s.active
}

func (m *Map) IsActive(d *drill.Drill) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[d]
	return ok && s.active
}

func (m *Map) IsConnected(d *drill.Drill) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[d]
	return ok && s.connected
}

func (m *Map) DepositCells() []ports.DepositCellRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.DepositCellRecord, 0, len(m.deposits))
	for c, d := range m.deposits {
		out = append(out, ports.DepositCellRecord{X: c.X, Y: c.Y, DefName: d.kind.DefName, Count: d.count})
	}
	sortRecords(out)
	return out
}

// ResetDeposits replaces the deposit layer. Cells naming a kind missing from
// kinds are dropped.
func (m *Map) ResetDeposits(cells []ports.DepositCellRecord, kinds map[string]world.ResourceKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deposits = make(map[world.Cell]deposit, len(cells))
	for _, rec := range cells {
		kind, ok := kinds[rec.DefName]
		if !ok || rec.Count <= 0 {
			continue
		}
		m.deposits[world.Cell{X: rec.X, Y: rec.Y}] = deposit{kind: kind, count: rec.Count}
	}
}

func sortRecords(out []ports.DepositCellRecord) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
}
