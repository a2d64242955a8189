package status

type Request struct {
	PlayerID string
}

// Snapshot is the read-only projection of one player's economy record plus
// the derived timers, computed at the evaluation instant and never cached.
type Snapshot struct {
	AltarEnergy     string `json:"altar_energy"`
	FireEnergy      string `json:"fire_energy"`
	WaterfallEnergy string `json:"waterfall_energy"`

	Food int `json:"food"`
	Wood int `json:"wood"`

	EnhancementCount int `json:"enhancement_count"`

	Timers Timers `json:"timers"`
}

type Timers struct {
	Altar     ActionTimer    `json:"altar"`
	Food      ActionTimer    `json:"food"`
	Wood      ActionTimer    `json:"wood"`
	Waterfall WaterfallTimer `json:"waterfall"`
	Boost     ActionTimer    `json:"boost"`
	Campfire  CampfireState  `json:"campfire"`
}

type ActionTimer struct {
	Ready           bool `json:"ready"`
	CooldownSeconds int  `json:"cooldown_seconds"`
}

type WaterfallTimer struct {
	Ready           bool `json:"ready"`
	CooldownSeconds int  `json:"cooldown_seconds"`
	IsActive        bool `json:"is_active"`
}

type CampfireState struct {
	IsBurning bool `json:"is_burning"`
}
