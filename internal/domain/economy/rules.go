package economy

import (
	"fmt"
	"math/rand"
	"time"
)

// Ruleset applies game actions to a player record. Rand feeds the altar's
// waterfall-bonus roll; inject a fixed source in tests.
type Ruleset struct {
	Rand func() float64
}

// Apply runs one action against the record. On success the record is mutated
// in place (debits, credits, anchor stamp); on rejection it is left exactly
// as it was. The caller owns atomicity and persistence.
func (r Ruleset) Apply(kind ActionKind, state *PlayerState, resource Resource, now time.Time) Result {
	switch kind {
	case ActionGatherFood:
		return r.gatherFood(state, now)
	case ActionGatherWood:
		return r.gatherWood(state, now)
	case ActionActivateAltar:
		return r.activateAltar(state, now)
	case ActionStartCampfire:
		return r.startCampfire(state, now)
	case ActionActivateWaterfall:
		return r.activateWaterfall(state, now)
	case ActionBoostWaterfall:
		return r.boostWaterfall(state, resource, now)
	case ActionEnhance:
		return r.enhancePlayer(state, now)
	default:
		return Result{Message: "Unknown action.", Reason: ReasonInvalidInput}
	}
}

func (r Ruleset) gatherFood(state *PlayerState, now time.Time) Result {
	if ok, remaining := CooldownRemaining(ActionGatherFood, *state, now); !ok {
		return rejectedCooldown(remaining)
	}

	amount := GatherFoodAmount
	if state.WaterfallActive(now) {
		amount *= 2
	}
	state.Food += amount
	state.LastFoodGather = timePtr(now)
	state.UpdatedAt = now

	return Result{Success: true, Message: fmt.Sprintf("You gathered %d food.", amount)}
}

func (r Ruleset) gatherWood(state *PlayerState, now time.Time) Result {
	if ok, remaining := CooldownRemaining(ActionGatherWood, *state, now); !ok {
		return rejectedCooldown(remaining)
	}
	if state.FireEnergy.LessThan(GatherWoodFireCost) {
		return rejectedInsufficient(ResourceFireEnergy, "Not enough fire energy to gather wood.")
	}

	state.FireEnergy = state.FireEnergy.Sub(GatherWoodFireCost)
	state.Wood += GatherWoodAmount
	state.LastWoodGather = timePtr(now)
	state.UpdatedAt = now

	return Result{Success: true, Message: fmt.Sprintf("You gathered %d wood.", GatherWoodAmount)}
}

// activateAltar converts fire energy into altar energy. The gain is full
// while the campfire burns and halved otherwise, with an independent small
// chance of a flat waterfall-energy bonus.
func (r Ruleset) activateAltar(state *PlayerState, now time.Time) Result {
	if ok, remaining := CooldownRemaining(ActionActivateAltar, *state, now); !ok {
		return rejectedCooldown(remaining)
	}
	if state.FireEnergy.LessThan(AltarFireCost) {
		return rejectedInsufficient(ResourceFireEnergy, "Not enough fire energy to activate the altar.")
	}

	gain := AltarGainUnburnt
	if state.CampfireBurning(now) {
		gain = AltarGainBurning
	}

	state.FireEnergy = state.FireEnergy.Sub(AltarFireCost)
	state.AltarEnergy = state.AltarEnergy.Add(gain)
	state.LastAltarActivation = timePtr(now)
	state.UpdatedAt = now

	msg := fmt.Sprintf("Altar activated. Gained %s altar energy.", gain.String())
	if r.roll() < AltarWaterfallBonusChance {
		state.WaterfallEnergy = state.WaterfallEnergy.Add(AltarWaterfallBonus)
		msg += " The waterfall stirs and grants bonus energy."
	}

	return Result{Success: true, Message: msg}
}

func (r Ruleset) startCampfire(state *PlayerState, now time.Time) Result {
	if state.CampfireBurning(now) {
		return Result{Message: "The campfire is already burning.", Reason: ReasonAlreadyActive}
	}
	if state.FireEnergy.LessThan(CampfireFireEnergyCost) {
		return rejectedInsufficient(ResourceFireEnergy, "Not enough fire energy to start the campfire.")
	}
	if state.AltarEnergy.LessThan(CampfireAltarEnergyCost) {
		return rejectedInsufficient(ResourceAltarEnergy, "Not enough altar energy to start the campfire.")
	}
	if state.Food < CampfireFoodCost {
		return rejectedInsufficient(ResourceFood, "Not enough food to start the campfire.")
	}
	if state.Wood < CampfireWoodCost {
		return rejectedInsufficient(ResourceWood, "Not enough wood to start the campfire.")
	}

	state.FireEnergy = state.FireEnergy.Sub(CampfireFireEnergyCost)
	state.AltarEnergy = state.AltarEnergy.Sub(CampfireAltarEnergyCost)
	state.Food -= CampfireFoodCost
	state.Wood -= CampfireWoodCost
	state.LastCampfireStart = timePtr(now)
	state.UpdatedAt = now

	hours := int(CampfireBurnDuration / time.Hour)
	return Result{Success: true, Message: fmt.Sprintf("Campfire lit. It will burn for %d hours.", hours)}
}

func (r Ruleset) activateWaterfall(state *PlayerState, now time.Time) Result {
	if ok, remaining := CooldownRemaining(ActionActivateWaterfall, *state, now); !ok {
		return rejectedCooldown(remaining)
	}
	if state.AltarEnergy.LessThan(WaterfallActivationAltarCost) {
		return rejectedInsufficient(ResourceAltarEnergy, "Not enough altar energy to activate the waterfall.")
	}

	state.AltarEnergy = state.AltarEnergy.Sub(WaterfallActivationAltarCost)
	state.WaterfallEnergy = state.WaterfallEnergy.Add(WaterfallActivationGain)
	state.LastWaterfallActivation = timePtr(now)
	state.UpdatedAt = now

	return Result{Success: true, Message: "The waterfall surges with energy."}
}

// boostWaterfall is a cooldown-gated energy sink. The resource argument is
// validated but not persisted; the boost applies to no stored balance.
func (r Ruleset) boostWaterfall(state *PlayerState, resource Resource, now time.Time) Result {
	if resource != ResourceFood && resource != ResourceWood {
		return Result{Message: "Unknown resource type for the boost.", Reason: ReasonInvalidInput}
	}
	if ok, remaining := CooldownRemaining(ActionBoostWaterfall, *state, now); !ok {
		return rejectedCooldown(remaining)
	}
	if state.WaterfallEnergy.LessThan(WaterfallBoostCost) {
		return rejectedInsufficient(ResourceWaterfallEnergy, "Not enough waterfall energy for the boost.")
	}

	state.WaterfallEnergy = state.WaterfallEnergy.Sub(WaterfallBoostCost)
	state.LastWaterfallBoost = timePtr(now)
	state.UpdatedAt = now

	return Result{Success: true, Message: fmt.Sprintf("Gathering boost engaged for %s.", resource)}
}

func (r Ruleset) enhancePlayer(state *PlayerState, now time.Time) Result {
	cost := EnhanceBaseCost
	if (state.EnhancementCount+1)%EnhanceSurchargeEvery == 0 {
		cost = cost.Mul(EnhanceSurchargeFactor)
	}

	if state.FireEnergy.LessThan(cost) {
		return rejectedInsufficient(ResourceFireEnergy, "Not enough fire energy for the enhancement.")
	}
	if state.AltarEnergy.LessThan(cost) {
		return rejectedInsufficient(ResourceAltarEnergy, "Not enough altar energy for the enhancement.")
	}
	if state.WaterfallEnergy.LessThan(cost) {
		return rejectedInsufficient(ResourceWaterfallEnergy, "Not enough waterfall energy for the enhancement.")
	}

	state.FireEnergy = state.FireEnergy.Sub(cost)
	state.AltarEnergy = state.AltarEnergy.Sub(cost)
	state.WaterfallEnergy = state.WaterfallEnergy.Sub(cost)
	state.EnhancementCount++
	state.UpdatedAt = now

	return Result{Success: true, Message: fmt.Sprintf("Enhancement complete. Total enhancements: %d.", state.EnhancementCount)}
}

func (r Ruleset) roll() float64 {
	if r.Rand != nil {
		return r.Rand()
	}
	return rand.Float64()
}

func timePtr(t time.Time) *time.Time {
	cp := t
	return &cp
}
