package memory

import (
	"context"

	"emberhold/internal/app/ports"
)

type SessionTokenRepo struct {
	store *Store
}

func NewSessionTokenRepo(store *Store) SessionTokenRepo {
	return SessionTokenRepo{store: store}
}

func (r SessionTokenRepo) Create(_ context.Context, token ports.SessionTokenRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tokens[token.TokenID]; ok {
		return ports.ErrConflict
	}
	r.store.tokens[token.TokenID] = token
	return nil
}

func (r SessionTokenRepo) GetByTokenID(_ context.Context, tokenID string) (ports.SessionTokenRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	token, ok := r.store.tokens[tokenID]
	if !ok {
		return ports.SessionTokenRecord{}, ports.ErrNotFound
	}
	return token, nil
}
