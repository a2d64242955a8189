package ports

import "emberhold/internal/domain/economy"

type ActionMetrics interface {
	RecordSuccess(action economy.ActionKind)
	RecordRejected(action economy.ActionKind, reason economy.RejectReason)
	RecordFailure(action economy.ActionKind)
}
