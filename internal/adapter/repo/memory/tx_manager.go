package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx holds the store lock for fn and restores the previous contents when
// fn fails.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	saved := t.store.clone()
	if err := fn(ctx); err != nil {
		t.store.restore(saved)
		return err
	}
	return nil
}
