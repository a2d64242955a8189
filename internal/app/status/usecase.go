package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"emberhold/internal/app/ports"
	"emberhold/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	StateRepo ports.PlayerStateRepository
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Snapshot, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Snapshot{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	state, err := u.StateRepo.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return Snapshot{}, err
	}

	waterfallReady, waterfallRemaining := economy.CooldownRemaining(economy.ActionActivateWaterfall, state, now)
	return Snapshot{
		AltarEnergy:      state.AltarEnergy.String(),
		FireEnergy:       state.FireEnergy.String(),
		WaterfallEnergy:  state.WaterfallEnergy.String(),
		Food:             state.Food,
		Wood:             state.Wood,
		EnhancementCount: state.EnhancementCount,
		Timers: Timers{
			Altar: actionTimer(economy.ActionActivateAltar, state, now),
			Food:  actionTimer(economy.ActionGatherFood, state, now),
			Wood:  actionTimer(economy.ActionGatherWood, state, now),
			Waterfall: WaterfallTimer{
				Ready:           waterfallReady,
				CooldownSeconds: waterfallRemaining,
				IsActive:        state.WaterfallActive(now),
			},
			Boost:    actionTimer(economy.ActionBoostWaterfall, state, now),
			Campfire: CampfireState{IsBurning: state.CampfireBurning(now)},
		},
	}, nil
}

func actionTimer(kind economy.ActionKind, state economy.PlayerState, now time.Time) ActionTimer {
	ready, remaining := economy.CooldownRemaining(kind, state, now)
	return ActionTimer{Ready: ready, CooldownSeconds: remaining}
}
