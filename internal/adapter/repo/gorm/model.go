package gormrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

type playerStateRow struct {
	PlayerID string `gorm:"column:player_id;primaryKey"`

	AltarEnergy     decimal.Decimal `gorm:"column:altar_energy;type:numeric(10,2)"`
	FireEnergy      decimal.Decimal `gorm:"column:fire_energy;type:numeric(10,2)"`
	WaterfallEnergy decimal.Decimal `gorm:"column:waterfall_energy;type:numeric(10,2)"`

	Food int `gorm:"column:food"`
	Wood int `gorm:"column:wood"`

	EnhancementCount int `gorm:"column:enhancement_count"`

	LastAltarActivation     *time.Time `gorm:"column:last_altar_activation"`
	LastFoodGather          *time.Time `gorm:"column:last_food_gather"`
	LastWoodGather          *time.Time `gorm:"column:last_wood_gather"`
	LastWaterfallActivation *time.Time `gorm:"column:last_waterfall_activation"`
	LastWaterfallBoost      *time.Time `gorm:"column:last_waterfall_boost"`
	LastCampfireStart       *time.Time `gorm:"column:last_campfire_start"`

	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (playerStateRow) TableName() string { return "player_states" }

type playerRow struct {
	PlayerID   string    `gorm:"column:player_id;primaryKey"`
	TelegramID int64     `gorm:"column:telegram_id;uniqueIndex"`
	Username   string    `gorm:"column:username"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (playerRow) TableName() string { return "players" }

type sessionTokenRow struct {
	TokenID    string    `gorm:"column:token_id;primaryKey"`
	PlayerID   string    `gorm:"column:player_id;index"`
	SecretSalt []byte    `gorm:"column:secret_salt"`
	SecretHash []byte    `gorm:"column:secret_hash"`
	IssuedAt   time.Time `gorm:"column:issued_at"`
}

func (sessionTokenRow) TableName() string { return "session_tokens" }
