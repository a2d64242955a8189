package economy

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GatherFoodAmount = 5
	GatherWoodAmount = 3

	CampfireFoodCost = 4
	CampfireWoodCost = 2

	CampfireBurnDuration  = 12 * time.Hour
	WaterfallActiveWindow = 1 * time.Hour

	// Every Nth enhancement costs SurchargeFactor times the base on all
	// three energies.
	EnhanceSurchargeEvery = 10

	AltarWaterfallBonusChance = 0.03
)

var (
	GatherWoodFireCost = dec("0.2")

	AltarFireCost       = dec("1")
	AltarGainBurning    = dec("1")
	AltarGainUnburnt    = dec("0.5")
	AltarWaterfallBonus = dec("0.5")

	CampfireFireEnergyCost  = dec("0.1")
	CampfireAltarEnergyCost = dec("0.1")

	WaterfallActivationAltarCost = dec("0.25")
	WaterfallActivationGain      = dec("0.2")

	WaterfallBoostCost = dec("0.35")

	EnhanceBaseCost        = dec("0.15")
	EnhanceSurchargeFactor = dec("1.015")
)

var ActionCooldowns = map[ActionKind]time.Duration{
	ActionGatherFood:        5 * time.Minute,
	ActionGatherWood:        5 * time.Minute,
	ActionActivateAltar:     30 * time.Minute,
	ActionActivateWaterfall: 10 * time.Minute,
	ActionBoostWaterfall:    24 * time.Hour,
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("economy: bad tuning constant " + s)
	}
	return d
}
