package memory

import (
	"context"

	"emberhold/internal/app/ports"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetByTelegramID(_ context.Context, telegramID int64) (ports.PlayerRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	player, ok := r.store.players[telegramID]
	if !ok {
		return ports.PlayerRecord{}, ports.ErrNotFound
	}
	return player, nil
}

func (r PlayerRepo) Create(_ context.Context, player ports.PlayerRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.players[player.TelegramID]; ok {
		return ports.ErrConflict
	}
	r.store.players[player.TelegramID] = player
	return nil
}
