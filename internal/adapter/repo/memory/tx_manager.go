package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInPlayerTx(ctx context.Context, playerID string, fn func(ctx context.Context) error) error {
	lock := t.store.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}
