package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"emberhold/internal/app/ports"
	"emberhold/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid action request")

// UseCase is the transactional executor for game actions: it locks one
// player's economy record, applies the pure rule, and persists the outcome
// atomically. Rule rejections come back as unsuccessful Results with nothing
// persisted; storage errors come back as Go errors.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	Metrics   ports.ActionMetrics
	Rules     economy.Ruleset
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" || !isSupportedAction(req.Action) {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInPlayerTx(ctx, req.PlayerID, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetForUpdate(txCtx, req.PlayerID)
		if err != nil {
			return err
		}

		result := u.Rules.Apply(req.Action, &state, req.Resource, nowFn())
		if result.Success {
			state.Version++
			if err := u.StateRepo.Save(txCtx, state); err != nil {
				return err
			}
		}

		out = Response{Result: result, State: state}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure(req.Action)
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		if out.Result.Success {
			u.Metrics.RecordSuccess(req.Action)
		} else {
			u.Metrics.RecordRejected(req.Action, out.Result.Reason)
		}
	}
	return out, nil
}

func isSupportedAction(kind economy.ActionKind) bool {
	switch kind {
	case economy.ActionGatherFood, economy.ActionGatherWood, economy.ActionActivateAltar:
		return true
	case economy.ActionStartCampfire, economy.ActionActivateWaterfall, economy.ActionBoostWaterfall, economy.ActionEnhance:
		return true
	default:
		return false
	}
}
