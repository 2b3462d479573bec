package drill

import "autodrill/internal/domain/world"

type deposit struct {
	kind  world.ResourceKind
	count int
}

// fakeMap implements every collaborator a drill needs.
type fakeMap struct {
	deposits      map[world.Cell]deposit
	base          *world.ResourceKind
	placed        []world.ItemStack
	placeFails    bool
	switchedOff   map[string]bool
	unpowered     map[string]bool
	drills        map[world.Cell]*Drill
	notifications []Notification
}

func newFakeMap() *fakeMap {
	return &fakeMap{
		deposits:    map[world.Cell]deposit{},
		switchedOff: map[string]bool{},
		unpowered:   map[string]bool{},
		drills:      map[world.Cell]*Drill{},
	}
}

func (m *fakeMap) KindAt(c world.Cell) (world.ResourceKind, bool) {
	d, ok := m.deposits[c]
	return d.kind, ok
}

func (m *fakeMap) CountAt(c world.Cell) int {
	return m.deposits[c].count
}

func (m *fakeMap) SetAt(c world.Cell, kind world.ResourceKind, count int) {
	if count <= 0 {
		delete(m.deposits, c)
		return
	}
	m.deposits[c] = deposit{kind: kind, count: count}
}

func (m *fakeMap) BaseResource() (world.ResourceKind, bool) {
	if m.base == nil {
		return world.ResourceKind{}, false
	}
	return *m.base, true
}

func (m *fakeMap) PlaceNear(stack world.ItemStack, _ world.Cell) bool {
	if m.placeFails {
		return false
	}
	m.placed = append(m.placed, stack)
	return true
}

func (m *fakeMap) IsPowered(d *Drill) bool {
	return !m.unpowered[d.ID] && !m.switchedOff[d.ID]
}

func (m *fakeMap) FirstDrillAt(c world.Cell) (*Drill, bool) {
	d, ok := m.drills[c]
	return d, ok
}

func (m *fakeMap) SetActive(d *Drill, on bool) {
	m.switchedOff[d.ID] = !on
}

func (m *fakeMap) Notify(n Notification) {
	m.notifications = append(m.notifications, n)
}

func (m *fakeMap) env(r Rand) *Env {
	return &Env{
		Bounds:   world.Bounds{Width: 64, Height: 64},
		Grid:     m,
		Base:     m,
		Placer:   m,
		Power:    m,
		Siblings: m,
		Notifier: m,
		Rand:     r,
	}
}

// addDrill places a drill and registers it as a sibling.
func (m *fakeMap) addDrill(env *Env, id string, pos world.Cell, cfg *Config) *Drill {
	d := New(id, pos, cfg, env)
	d.PostSpawnSetup(false)
	m.drills[pos] = d
	return d
}

type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 {
	return r.f
}

var (
	iron  = world.ResourceKind{DefName: "Steel", Label: "steel", CountPerPortion: 75}
	stone = world.ResourceKind{DefName: "ChunkGranite", Label: "granite chunk", CountPerPortion: 1}
)

var (
	_ DepositGrid          = (*fakeMap)(nil)
	_ BaseResourceProvider = (*fakeMap)(nil)
	_ Placer               = (*fakeMap)(nil)
	_ PowerSignal          = (*fakeMap)(nil)
	_ SiblingRegistry      = (*fakeMap)(nil)
	_ Notifier             = (*fakeMap)(nil)
	_ Rand                 = fixedRand{}
)
