package economy

import (
	"testing"
	"time"
)

func TestTuning_Defaults(t *testing.T) {
	if GatherFoodAmount != 5 || GatherWoodAmount != 3 {
		t.Fatalf("gather amounts = (%d,%d), want (5,3)", GatherFoodAmount, GatherWoodAmount)
	}
	if CampfireFoodCost != 4 || CampfireWoodCost != 2 {
		t.Fatalf("campfire resource costs = (%d,%d), want (4,2)", CampfireFoodCost, CampfireWoodCost)
	}
	if CampfireBurnDuration != 12*time.Hour {
		t.Fatalf("CampfireBurnDuration = %s, want 12h", CampfireBurnDuration)
	}
	if WaterfallActiveWindow != 1*time.Hour {
		t.Fatalf("WaterfallActiveWindow = %s, want 1h", WaterfallActiveWindow)
	}
	if EnhanceSurchargeEvery != 10 {
		t.Fatalf("EnhanceSurchargeEvery = %d, want 10", EnhanceSurchargeEvery)
	}
	if AltarWaterfallBonusChance != 0.03 {
		t.Fatalf("AltarWaterfallBonusChance = %v, want 0.03", AltarWaterfallBonusChance)
	}
	if got := GatherWoodFireCost.String(); got != "0.2" {
		t.Fatalf("GatherWoodFireCost = %s, want 0.2", got)
	}
	if got := EnhanceBaseCost.String(); got != "0.15" {
		t.Fatalf("EnhanceBaseCost = %s, want 0.15", got)
	}
	if got := EnhanceSurchargeFactor.String(); got != "1.015" {
		t.Fatalf("EnhanceSurchargeFactor = %s, want 1.015", got)
	}
	if got := WaterfallBoostCost.String(); got != "0.35" {
		t.Fatalf("WaterfallBoostCost = %s, want 0.35", got)
	}
}

func TestTuning_Cooldowns(t *testing.T) {
	if got := ActionCooldowns[ActionGatherFood]; got != 5*time.Minute {
		t.Fatalf("food gather cooldown = %s, want 5m", got)
	}
	if got := ActionCooldowns[ActionGatherWood]; got != 5*time.Minute {
		t.Fatalf("wood gather cooldown = %s, want 5m", got)
	}
	if got := ActionCooldowns[ActionActivateAltar]; got != 30*time.Minute {
		t.Fatalf("altar cooldown = %s, want 30m", got)
	}
	if got := ActionCooldowns[ActionActivateWaterfall]; got != 10*time.Minute {
		t.Fatalf("waterfall cooldown = %s, want 10m", got)
	}
	if got := ActionCooldowns[ActionBoostWaterfall]; got != 24*time.Hour {
		t.Fatalf("boost cooldown = %s, want 24h", got)
	}
	if _, ok := ActionCooldowns[ActionEnhance]; ok {
		t.Fatalf("enhance must not have a cooldown")
	}
	if _, ok := ActionCooldowns[ActionStartCampfire]; ok {
		t.Fatalf("campfire must be gated by the burn window, not a cooldown")
	}
}
