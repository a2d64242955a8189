package economy

import (
	"testing"
	"time"
)

func TestCampfireBurning_Window(t *testing.T) {
	state := NewPlayerState("p1", testNow)
	if state.CampfireBurning(testNow) {
		t.Fatalf("campfire must not burn before first ignition")
	}

	state.LastCampfireStart = timePtr(testNow)
	if !state.CampfireBurning(testNow) {
		t.Fatalf("campfire must burn at ignition instant")
	}
	if !state.CampfireBurning(testNow.Add(12*time.Hour - time.Second)) {
		t.Fatalf("campfire must burn just before the window closes")
	}
	if state.CampfireBurning(testNow.Add(12 * time.Hour)) {
		t.Fatalf("campfire must lapse exactly at 12h")
	}
	if state.CampfireBurning(testNow.Add(13 * time.Hour)) {
		t.Fatalf("campfire must stay lapsed after the window")
	}
}

func TestWaterfallActive_Window(t *testing.T) {
	state := NewPlayerState("p1", testNow)
	if state.WaterfallActive(testNow) {
		t.Fatalf("waterfall must be inactive before first activation")
	}

	state.LastWaterfallActivation = timePtr(testNow)
	if !state.WaterfallActive(testNow.Add(59 * time.Minute)) {
		t.Fatalf("waterfall must be active inside the hour window")
	}
	if state.WaterfallActive(testNow.Add(time.Hour)) {
		t.Fatalf("waterfall must lapse exactly at 1h")
	}
}
