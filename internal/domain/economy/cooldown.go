package economy

import "time"

// CooldownRemaining reports whether the action is off cooldown for the given
// record at the given instant, and how many whole seconds remain otherwise.
// An unset anchor means the action has never run and is always eligible.
// Pure; safe to call outside a transaction for status display.
func CooldownRemaining(kind ActionKind, state PlayerState, now time.Time) (bool, int) {
	cooldown, ok := ActionCooldowns[kind]
	if !ok {
		return true, 0
	}
	anchor := state.anchorFor(kind)
	if anchor == nil || anchor.IsZero() {
		return true, 0
	}
	remaining := cooldown - now.Sub(*anchor)
	if remaining <= 0 {
		return true, 0
	}
	seconds := int((remaining + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return false, seconds
}

func (s PlayerState) anchorFor(kind ActionKind) *time.Time {
	switch kind {
	case ActionGatherFood:
		return s.LastFoodGather
	case ActionGatherWood:
		return s.LastWoodGather
	case ActionActivateAltar:
		return s.LastAltarActivation
	case ActionActivateWaterfall:
		return s.LastWaterfallActivation
	case ActionBoostWaterfall:
		return s.LastWaterfallBoost
	default:
		return nil
	}
}
