package ports

import (
	"context"
	"time"

	"emberhold/internal/domain/economy"
)

// PlayerStateRepository stores one economy record per player. GetForUpdate
// must only be called inside RunInPlayerTx; on the SQL adapter it takes a
// row-level exclusive lock so concurrent requests for the same player
// serialize on the read-modify-write.
type PlayerStateRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (economy.PlayerState, error)
	GetForUpdate(ctx context.Context, playerID string) (economy.PlayerState, error)
	Create(ctx context.Context, state economy.PlayerState) error
	Save(ctx context.Context, state economy.PlayerState) error
}

type PlayerRecord struct {
	PlayerID   string
	TelegramID int64
	Username   string
	CreatedAt  time.Time
}

type PlayerRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (PlayerRecord, error)
	Create(ctx context.Context, player PlayerRecord) error
}

// SessionTokenRecord holds one issued session credential. Only the salted
// hash of the token secret is stored.
type SessionTokenRecord struct {
	TokenID    string
	PlayerID   string
	SecretSalt []byte
	SecretHash []byte
	IssuedAt   time.Time
}

type SessionTokenRepository interface {
	Create(ctx context.Context, token SessionTokenRecord) error
	GetByTokenID(ctx context.Context, tokenID string) (SessionTokenRecord, error)
}
