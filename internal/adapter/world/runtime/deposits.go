package runtime

import (
	"math"

	"autodrill/internal/domain/world"
)

var (
	Stone    = world.ResourceKind{DefName: "chunk_stone", Label: "stone chunk", CountPerPortion: 1}
	Steel    = world.ResourceKind{DefName: "steel", Label: "steel", CountPerPortion: 35}
	Gold     = world.ResourceKind{DefName: "gold", Label: "gold", CountPerPortion: 20}
	Plasteel = world.ResourceKind{DefName: "plasteel", Label: "plasteel", CountPerPortion: 20}
)

// DepositLayer seeds one resource kind in a ring of Manhattan distance from
// the map centre. Every is the seed modulus: roughly one cell in Every gets a
// deposit.
type DepositLayer struct {
	Kind        world.ResourceKind
	MinDistance int
	MaxDistance int
	Every       int
	Count       int
}

func DefaultLayers() []DepositLayer {
	return []DepositLayer{
		{Kind: Steel, MinDistance: 0, MaxDistance: 14, Every: 7, Count: 150},
		{Kind: Gold, MinDistance: 10, MaxDistance: 28, Every: 11, Count: 60},
		{Kind: Plasteel, MinDistance: 24, MaxDistance: math.MaxInt32, Every: 13, Count: 90},
	}
}

// Kinds indexes every kind the config can put on the map by def name.
func (cfg Config) Kinds() map[string]world.ResourceKind {
	out := map[string]world.ResourceKind{}
	if !cfg.BaseResource.IsZero() {
		out[cfg.BaseResource.DefName] = cfg.BaseResource
	}
	for _, l := range cfg.Layers {
		if !l.Kind.IsZero() {
			out[l.Kind.DefName] = l.Kind
		}
	}
	return out
}

// generateDeposits lays out deposits deterministically from seed. The first
// layer whose ring and modulus match a cell wins.
func generateDeposits(bounds world.Bounds, layers []DepositLayer, seed int) map[world.Cell]deposit {
	out := map[world.Cell]deposit{}
	cx, cy := bounds.Width/2, bounds.Height/2
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			d := distanceFrom(x, y, cx, cy)
			s := cellSeed(x, y, seed)
			for _, l := range layers {
				if l.Every <= 0 || l.Count <= 0 || l.Kind.IsZero() {
					continue
				}
				if d < l.MinDistance || d > l.MaxDistance || s%l.Every != 0 {
					continue
				}
				out[world.Cell{X: x, Y: y}] = deposit{kind: l.Kind, count: l.Count}
				break
			}
		}
	}
	return out
}

func distanceFrom(x, y, cx, cy int) int {
	return int(math.Abs(float64(x-cx)) + math.Abs(float64(y-cy)))
}

func cellSeed(x, y, seed int) int {
	v := (x+seed)*73856093 ^ (y-seed)*19349663
	if v < 0 {
		v = -v
	}
	return v
}
