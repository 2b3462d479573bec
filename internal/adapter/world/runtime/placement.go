package runtime

import (
	"sort"

	"autodrill/internal/app/ports"
	"autodrill/internal/domain/world"
)

// PlaceNear drops the stack on the closest cell around pos that is not a
// drill and either is empty or holds the same kind with room left.
func (m *Map) PlaceNear(stack world.ItemStack, pos world.Cell) bool {
	if stack.Count <= 0 || stack.Kind.IsZero() {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bounds := m.Bounds()
	for _, off := range world.RadialPattern {
		c := pos.Add(off)
		if !bounds.InBounds(c) {
			continue
		}
		if _, isDrill := m.byCell[c]; isDrill {
			continue
		}
		cur, ok := m.items[c]
		if !ok {
			m.items[c] = stack
			return true
		}
		if cur.Kind.DefName == stack.Kind.DefName && cur.Count+stack.Count <= m.cfg.StackLimit {
			cur.Count += stack.Count
			m.items[c] = cur
			return true
		}
	}
	return false
}

func (m *Map) Items() []ports.PlacedItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.PlacedItem, 0, len(m.items))
	for c, s := range m.items {
		out = append(out, ports.PlacedItem{X: c.X, Y: c.Y, Kind: s.Kind.DefName, Count: s.Count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
