package inmemory

import (
	"sync"

	"emberhold/internal/domain/economy"
)

type Snapshot struct {
	ActionTotal   uint64            `json:"action_total"`
	ActionSuccess uint64            `json:"action_success"`
	ActionReject  uint64            `json:"action_reject"`
	ActionFailure uint64            `json:"action_failure"`
	ByAction      map[string]uint64 `json:"by_action"`
	ByReason      map[string]uint64 `json:"by_reason"`
}

// Recorder tallies action outcomes for the /ops/kpi endpoint.
type Recorder struct {
	mu       sync.Mutex
	success  uint64
	reject   uint64
	failure  uint64
	byAction map[string]uint64
	byReason map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
		byReason: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(action economy.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byAction[string(action)]++
}

func (r *Recorder) RecordRejected(action economy.ActionKind, reason economy.RejectReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reject++
	r.byAction[string(action)]++
	r.byReason[string(reason)]++
}

func (r *Recorder) RecordFailure(action economy.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byAction[string(action)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess: r.success,
		ActionReject:  r.reject,
		ActionFailure: r.failure,
		ActionTotal:   r.success + r.reject + r.failure,
		ByAction:      make(map[string]uint64, len(r.byAction)),
		ByReason:      make(map[string]uint64, len(r.byReason)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	for k, v := range r.byReason {
		out.ByReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
