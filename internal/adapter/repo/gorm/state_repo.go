package gormrepo

import (
	"context"
	"errors"

	"emberhold/internal/app/ports"
	"emberhold/internal/domain/economy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerStateRepo struct {
	db *gorm.DB
}

func NewPlayerStateRepo(db *gorm.DB) PlayerStateRepo {
	return PlayerStateRepo{db: db}
}

func (r PlayerStateRepo) GetByPlayerID(ctx context.Context, playerID string) (economy.PlayerState, error) {
	var row playerStateRow
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.PlayerState{}, ports.ErrNotFound
		}
		return economy.PlayerState{}, err
	}
	return stateFromRow(row), nil
}

// GetForUpdate takes a row-level exclusive lock; a second request for the
// same player blocks here until the first transaction commits.
func (r PlayerStateRepo) GetForUpdate(ctx context.Context, playerID string) (economy.PlayerState, error) {
	var row playerStateRow
	err := getDBFromCtx(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("player_id = ?", playerID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.PlayerState{}, ports.ErrNotFound
		}
		return economy.PlayerState{}, err
	}
	return stateFromRow(row), nil
}

func (r PlayerStateRepo) Create(ctx context.Context, state economy.PlayerState) error {
	row := rowFromState(state)
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r PlayerStateRepo) Save(ctx context.Context, state economy.PlayerState) error {
	row := rowFromState(state)
	res := getDBFromCtx(ctx, r.db).
		Model(&playerStateRow{}).
		Where("player_id = ?", state.PlayerID).
		Updates(map[string]any{
			"altar_energy":              row.AltarEnergy,
			"fire_energy":               row.FireEnergy,
			"waterfall_energy":          row.WaterfallEnergy,
			"food":                      row.Food,
			"wood":                      row.Wood,
			"enhancement_count":         row.EnhancementCount,
			"last_altar_activation":     row.LastAltarActivation,
			"last_food_gather":          row.LastFoodGather,
			"last_wood_gather":          row.LastWoodGather,
			"last_waterfall_activation": row.LastWaterfallActivation,
			"last_waterfall_boost":      row.LastWaterfallBoost,
			"last_campfire_start":       row.LastCampfireStart,
			"version":                   row.Version,
			"updated_at":                row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func stateFromRow(row playerStateRow) economy.PlayerState {
	return economy.PlayerState{
		PlayerID:                row.PlayerID,
		AltarEnergy:             row.AltarEnergy,
		FireEnergy:              row.FireEnergy,
		WaterfallEnergy:         row.WaterfallEnergy,
		Food:                    row.Food,
		Wood:                    row.Wood,
		EnhancementCount:        row.EnhancementCount,
		LastAltarActivation:     row.LastAltarActivation,
		LastFoodGather:          row.LastFoodGather,
		LastWoodGather:          row.LastWoodGather,
		LastWaterfallActivation: row.LastWaterfallActivation,
		LastWaterfallBoost:      row.LastWaterfallBoost,
		LastCampfireStart:       row.LastCampfireStart,
		Version:                 row.Version,
		UpdatedAt:               row.UpdatedAt,
	}
}

func rowFromState(state economy.PlayerState) playerStateRow {
	return playerStateRow{
		PlayerID:                state.PlayerID,
		AltarEnergy:             state.AltarEnergy,
		FireEnergy:              state.FireEnergy,
		WaterfallEnergy:         state.WaterfallEnergy,
		Food:                    state.Food,
		Wood:                    state.Wood,
		EnhancementCount:        state.EnhancementCount,
		LastAltarActivation:     state.LastAltarActivation,
		LastFoodGather:          state.LastFoodGather,
		LastWoodGather:          state.LastWoodGather,
		LastWaterfallActivation: state.LastWaterfallActivation,
		LastWaterfallBoost:      state.LastWaterfallBoost,
		LastCampfireStart:       state.LastCampfireStart,
		Version:                 state.Version,
		UpdatedAt:               state.UpdatedAt,
	}
}
