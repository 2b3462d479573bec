package ports

import "autodrill/internal/domain/drill"

type ExtractionMetrics interface {
	RecordSpawn(drillID string, res drill.SpawnResult)
	RecordTicks(n int)
}
