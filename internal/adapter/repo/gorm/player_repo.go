package gormrepo

import (
	"context"
	"errors"
	"strings"

	"emberhold/internal/app/ports"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByTelegramID(ctx context.Context, telegramID int64) (ports.PlayerRecord, error) {
	var row playerRow
	if err := getDBFromCtx(ctx, r.db).Where("telegram_id = ?", telegramID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PlayerRecord{}, ports.ErrNotFound
		}
		return ports.PlayerRecord{}, err
	}
	return ports.PlayerRecord{
		PlayerID:   row.PlayerID,
		TelegramID: row.TelegramID,
		Username:   row.Username,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r PlayerRepo) Create(ctx context.Context, player ports.PlayerRecord) error {
	row := playerRow{
		PlayerID:   player.PlayerID,
		TelegramID: player.TelegramID,
		Username:   player.Username,
		CreatedAt:  player.CreatedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
