package economy

import "time"

// CampfireBurning reports whether the campfire lit at LastCampfireStart is
// still within its burn window. There is no explicit extinguish transition;
// the state lapses when the window elapses.
func (s PlayerState) CampfireBurning(now time.Time) bool {
	if s.LastCampfireStart == nil || s.LastCampfireStart.IsZero() {
		return false
	}
	return now.Sub(*s.LastCampfireStart) < CampfireBurnDuration
}

// WaterfallActive reports whether the waterfall activation window opened at
// LastWaterfallActivation still covers now. Food gathering yields double
// while active.
func (s PlayerState) WaterfallActive(now time.Time) bool {
	if s.LastWaterfallActivation == nil || s.LastWaterfallActivation.IsZero() {
		return false
	}
	return now.Sub(*s.LastWaterfallActivation) < WaterfallActiveWindow
}
