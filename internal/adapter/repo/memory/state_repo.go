package memory

import (
	"context"

	"emberhold/internal/app/ports"
	"emberhold/internal/domain/economy"
)

type PlayerStateRepo struct {
	store *Store
}

func NewPlayerStateRepo(store *Store) PlayerStateRepo {
	return PlayerStateRepo{store: store}
}

func (r PlayerStateRepo) GetByPlayerID(_ context.Context, playerID string) (economy.PlayerState, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	state, ok := r.store.states[playerID]
	if !ok {
		return economy.PlayerState{}, ports.ErrNotFound
	}
	return state, nil
}

// GetForUpdate relies on the per-player mutex held by RunInPlayerTx for
// exclusivity; the read itself is the same as GetByPlayerID.
func (r PlayerStateRepo) GetForUpdate(ctx context.Context, playerID string) (economy.PlayerState, error) {
	return r.GetByPlayerID(ctx, playerID)
}

func (r PlayerStateRepo) Create(_ context.Context, state economy.PlayerState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.states[state.PlayerID]; ok {
		return ports.ErrConflict
	}
	r.store.states[state.PlayerID] = state
	return nil
}

func (r PlayerStateRepo) Save(_ context.Context, state economy.PlayerState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.states[state.PlayerID]; !ok {
		return ports.ErrNotFound
	}
	r.store.states[state.PlayerID] = state
	return nil
}
