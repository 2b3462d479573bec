package drill

const ticksUntilSpawnKey = "ticksUntilSpawn"

type StateWriter interface {
	WriteInt(key string, v int)
}

type StateReader interface {
	ReadInt(key string) (int, bool)
}

// State is an in-memory key/value record of one drill's saved values.
type State map[string]int

func (s State) WriteInt(key string, v int) {
	s[key] = v
}

func (s State) ReadInt(key string) (int, bool) {
	v, ok := s[key]
	return v, ok
}

// SaveKey scopes the countdown under the kind's prefix so several drill kinds
// can share one entity.
func (d *Drill) SaveKey() string {
	if d.cfg.SaveKeysPrefix == "" {
		return ticksUntilSpawnKey
	}
	return d.cfg.SaveKeysPrefix + "_" + ticksUntilSpawnKey
}

func (d *Drill) SaveState(w StateWriter) {
	w.WriteInt(d.SaveKey(), d.ticksUntilSpawn)
}

// LoadState restores the countdown; a missing value loads as zero.
func (d *Drill) LoadState(r StateReader) {
	v, ok := r.ReadInt(d.SaveKey())
	if !ok {
		v = 0
	}
	d.ticksUntilSpawn = v
}
