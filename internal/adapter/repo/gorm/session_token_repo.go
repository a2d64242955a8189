package gormrepo

import (
	"context"
	"errors"

	"emberhold/internal/app/ports"

	"gorm.io/gorm"
)

type SessionTokenRepo struct {
	db *gorm.DB
}

func NewSessionTokenRepo(db *gorm.DB) SessionTokenRepo {
	return SessionTokenRepo{db: db}
}

func (r SessionTokenRepo) Create(ctx context.Context, token ports.SessionTokenRecord) error {
	row := sessionTokenRow{
		TokenID:    token.TokenID,
		PlayerID:   token.PlayerID,
		SecretSalt: token.SecretSalt,
		SecretHash: token.SecretHash,
		IssuedAt:   token.IssuedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r SessionTokenRepo) GetByTokenID(ctx context.Context, tokenID string) (ports.SessionTokenRecord, error) {
	var row sessionTokenRow
	if err := getDBFromCtx(ctx, r.db).Where("token_id = ?", tokenID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SessionTokenRecord{}, ports.ErrNotFound
		}
		return ports.SessionTokenRecord{}, err
	}
	return ports.SessionTokenRecord{
		TokenID:    row.TokenID,
		PlayerID:   row.PlayerID,
		SecretSalt: row.SecretSalt,
		SecretHash: row.SecretHash,
		IssuedAt:   row.IssuedAt,
	}, nil
}
