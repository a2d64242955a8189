package action

import "emberhold/internal/domain/economy"

type Request struct {
	PlayerID string
	Action   economy.ActionKind
	// Resource targets the waterfall boost; ignored by every other action.
	Resource economy.Resource
}

type Response struct {
	Result economy.Result      `json:"result"`
	State  economy.PlayerState `json:"state"`
}
