package memory

import (
	"sync"

	"autodrill/internal/app/ports"
)

type Store struct {
	mu       sync.RWMutex
	drills   map[string]map[string]ports.DrillStateRecord
	order    map[string][]string
	deposits map[string][]ports.DepositCellRecord
}

func NewStore() *Store {
	return &Store{
		drills:   make(map[string]map[string]ports.DrillStateRecord),
		order:    make(map[string][]string),
		deposits: make(map[string][]ports.DepositCellRecord),
	}
}

type storeData struct {
	drills   map[string]map[string]ports.DrillStateRecord
	order    map[string][]string
	deposits map[string][]ports.DepositCellRecord
}

// clone copies the store contents; callers hold mu.
func (s *Store) clone() storeData {
	out := storeData{
		drills:   make(map[string]map[string]ports.DrillStateRecord, len(s.drills)),
		order:    make(map[string][]string, len(s.order)),
		deposits: make(map[string][]ports.DepositCellRecord, len(s.deposits)),
	}
	for colony, byID := range s.drills {
		cp := make(map[string]ports.DrillStateRecord, len(byID))
		for id, rec := range byID {
			rec.Values = copyValues(rec.Values)
			cp[id] = rec
		}
		out.drills[colony] = cp
	}
	for colony, ids := range s.order {
		out.order[colony] = append([]string(nil), ids...)
	}
	for colony, cells := range s.deposits {
		out.deposits[colony] = append([]ports.DepositCellRecord(nil), cells...)
	}
	return out
}

func (s *Store) restore(d storeData) {
	s.drills = d.drills
	s.order = d.order
	s.deposits = d.deposits
}
