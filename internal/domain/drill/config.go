package drill

import "fmt"

// MaxScanRadius bounds the per-drill resource lookup radius.
const MaxScanRadius = 4

type TickerType string

const (
	TickerNormal TickerType = "normal"
	TickerRare   TickerType = "rare"
)

type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RandomInRange draws uniformly from [Min, Max]. An empty or inverted range yields Min.
func (r IntRange) RandomInRange(rng Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Config is shared by every drill of one kind and must not be mutated once drills use it.
type Config struct {
	ConsumeDeepResources          bool       `json:"consume_deep_resources"`
	ResourceConsumptionMultiplier float64    `json:"resource_consumption_multiplier"`
	ResourceOutputMultiplier      float64    `json:"resource_output_multiplier"`
	StoneChunkQuantity            IntRange   `json:"stone_chunk_quantity"`
	SpawnIntervalRange            IntRange   `json:"spawn_interval_range"`
	ScanRadius                    int        `json:"scan_radius"`
	SaveKeysPrefix                string     `json:"save_keys_prefix,omitempty"`
	TickerType                    TickerType `json:"ticker_type"`
}

func DefaultConfig() Config {
	return Config{
		ConsumeDeepResources:          true,
		ResourceConsumptionMultiplier: 1.0,
		ResourceOutputMultiplier:      1.0,
		StoneChunkQuantity:            IntRange{Min: 1, Max: 1},
		SpawnIntervalRange:            IntRange{Min: 2500, Max: 2500},
		ScanRadius:                    MaxScanRadius,
		TickerType:                    TickerNormal,
	}
}

// Errors reports configuration problems. Drills keep running with an invalid
// config; these are surfaced as warnings when kinds are registered.
func (c Config) Errors() []string {
	var out []string
	if c.ScanRadius > MaxScanRadius {
		out = append(out, fmt.Sprintf("scan_radius should be less than or equal to %d; the exhaustion sweep only covers radius %d", MaxScanRadius, ExhaustionSweepRadius))
	}
	if c.ResourceConsumptionMultiplier < 0 {
		out = append(out, "resource_consumption_multiplier should be greater than or equal to zero; set consume_deep_resources to false to disable depletion")
	}
	if c.ResourceOutputMultiplier <= 0 {
		out = append(out, "resource_output_multiplier must be greater than zero")
	}
	if c.StoneChunkQuantity.Max < c.StoneChunkQuantity.Min {
		out = append(out, "stone_chunk_quantity max is below min")
	}
	if c.SpawnIntervalRange.Max < c.SpawnIntervalRange.Min {
		out = append(out, "spawn_interval_range max is below min")
	}
	switch c.TickerType {
	case TickerNormal, TickerRare, "":
	default:
		out = append(out, fmt.Sprintf("unknown ticker_type %q", c.TickerType))
	}
	return out
}

func (c Config) scanRadius() int {
	switch {
	case c.ScanRadius < 0:
		return 0
	case c.ScanRadius > MaxScanRadius:
		return MaxScanRadius
	default:
		return c.ScanRadius
	}
}
