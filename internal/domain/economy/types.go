package economy

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerState is the per-player economy record. Exactly one exists per player
// identity, created zero-valued at registration. Anchor timestamps are set
// only on successful actions and never cleared.
type PlayerState struct {
	PlayerID string `json:"player_id"`

	AltarEnergy     decimal.Decimal `json:"altar_energy"`
	FireEnergy      decimal.Decimal `json:"fire_energy"`
	WaterfallEnergy decimal.Decimal `json:"waterfall_energy"`

	Food int `json:"food"`
	Wood int `json:"wood"`

	EnhancementCount int `json:"enhancement_count"`

	LastAltarActivation     *time.Time `json:"last_altar_activation,omitempty"`
	LastFoodGather          *time.Time `json:"last_food_gather,omitempty"`
	LastWoodGather          *time.Time `json:"last_wood_gather,omitempty"`
	LastWaterfallActivation *time.Time `json:"last_waterfall_activation,omitempty"`
	LastWaterfallBoost      *time.Time `json:"last_waterfall_boost,omitempty"`
	LastCampfireStart       *time.Time `json:"last_campfire_start,omitempty"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlayerState returns the zero-valued record seeded at registration.
func NewPlayerState(playerID string, now time.Time) PlayerState {
	return PlayerState{
		PlayerID:        playerID,
		AltarEnergy:     decimal.Zero,
		FireEnergy:      decimal.Zero,
		WaterfallEnergy: decimal.Zero,
		Version:         1,
		UpdatedAt:       now,
	}
}

type ActionKind string

const (
	ActionGatherFood        ActionKind = "gather_food"
	ActionGatherWood        ActionKind = "gather_wood"
	ActionActivateAltar     ActionKind = "altar_activate"
	ActionStartCampfire     ActionKind = "campfire_start"
	ActionActivateWaterfall ActionKind = "waterfall_activate"
	ActionBoostWaterfall    ActionKind = "waterfall_boost"
	ActionEnhance           ActionKind = "enhance"
)

// Resource names a consumable balance an action may touch or target.
type Resource string

const (
	ResourceFood            Resource = "food"
	ResourceWood            Resource = "wood"
	ResourceAltarEnergy     Resource = "altar_energy"
	ResourceFireEnergy      Resource = "fire_energy"
	ResourceWaterfallEnergy Resource = "waterfall_energy"
)

type RejectReason string

const (
	ReasonCooldownActive       RejectReason = "cooldown_active"
	ReasonInsufficientResource RejectReason = "insufficient_resource"
	ReasonAlreadyActive        RejectReason = "already_active"
	ReasonInvalidInput         RejectReason = "invalid_input"
)

// Result is the outcome of one action attempt. Rule rejections are values,
// not errors: a rejected action carries Success=false plus the reason, and
// leaves the record untouched.
type Result struct {
	Success         bool         `json:"success"`
	Message         string       `json:"message"`
	CooldownSeconds int          `json:"cooldown_seconds"`
	Reason          RejectReason `json:"reason,omitempty"`
	Missing         Resource     `json:"missing,omitempty"`
}

func rejectedCooldown(remaining int) Result {
	return Result{
		Message:         "Action is on cooldown.",
		CooldownSeconds: remaining,
		Reason:          ReasonCooldownActive,
	}
}

func rejectedInsufficient(missing Resource, message string) Result {
	return Result{
		Message: message,
		Reason:  ReasonInsufficientResource,
		Missing: missing,
	}
}
