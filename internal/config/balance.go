package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Starting player state
	StartBalance int64 `json:"start_balance"`
	StartPower   int   `json:"start_power"`
	StartLevel   int   `json:"start_level"`

	// Passive income
	MaxOfflineSeconds float64 `json:"max_offline_seconds"`

	// Rate limiting
	BaseClickLimit int `json:"base_click_limit"`
	MaxClickLimit  int `json:"max_click_limit"`

	// Random events
	EventClickInterval int     `json:"event_click_interval"`
	EventClickProb     float64 `json:"event_click_prob"`
	EventOrderProb     float64 `json:"event_order_prob"`
	PendingEventTTLSec float64 `json:"pending_event_ttl_sec"`

	// Orders
	RewardPerEffort   float64 `json:"reward_per_effort"`
	XPPerEffort       float64 `json:"xp_per_effort"`
	FreeStartPct      float64 `json:"free_start_pct"`
	RushWindowSeconds float64 `json:"rush_window_seconds"`
	HighTierMinLevel  int     `json:"high_tier_min_level"`
	SpecialOrderMul   float64 `json:"special_order_mul"`

	// Stat caps
	EffortReductionBoostCap float64 `json:"effort_reduction_boost_cap"`
	EffortReductionTotalCap float64 `json:"effort_reduction_total_cap"`
	ShopDiscountCap         float64 `json:"shop_discount_cap"`
	EventResistanceCap      float64 `json:"event_resistance_cap"`
	TeamDiscountCap         float64 `json:"team_discount_cap"`
	CritChanceCap           float64 `json:"crit_chance_cap"`
	FreeStartChanceCap      float64 `json:"free_start_chance_cap"`

	// Combo
	ComboResetSeconds float64 `json:"combo_reset_seconds"`

	// Trend
	TrendDurationHours float64 `json:"trend_duration_hours"`
	TrendRewardMul     float64 `json:"trend_reward_mul"`

	// Cost progression
	BoostCostGrowth float64 `json:"boost_cost_growth"`
	PowerAddGrowth  float64 `json:"power_add_growth"`
	TeamCostGrowth  float64 `json:"team_cost_growth"`
	TeamIncomeStep  float64 `json:"team_income_step"`

	// Prestige
	PrestigeDivisor  float64 `json:"prestige_divisor"`
	PrestigeMinLevel int     `json:"prestige_min_level"`
	ReputationPct    float64 `json:"reputation_pct"`

	// Skills
	SkillLevelInterval int `json:"skill_level_interval"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		StartBalance:      200,
		StartPower:        1,
		StartLevel:        1,
		MaxOfflineSeconds: 12 * 60 * 60,

		BaseClickLimit: 10,
		MaxClickLimit:  30,

		EventClickInterval: 20,
		EventClickProb:     0.25,
		EventOrderProb:     0.35,
		PendingEventTTLSec: 12 * 60 * 60,

		RewardPerEffort:   0.6,
		XPPerEffort:       0.1,
		FreeStartPct:      0.10,
		RushWindowSeconds: 300,
		HighTierMinLevel:  5,
		SpecialOrderMul:   2.0,

		EffortReductionBoostCap: 0.30,
		EffortReductionTotalCap: 0.95,
		ShopDiscountCap:         0.20,
		EventResistanceCap:      0.90,
		TeamDiscountCap:         0.80,
		CritChanceCap:           0.95,
		FreeStartChanceCap:      0.95,

		ComboResetSeconds: 3.0,

		TrendDurationHours: 24,
		TrendRewardMul:     2.0,

		BoostCostGrowth: 1.6,
		PowerAddGrowth:  1.45,
		TeamCostGrowth:  1.22,
		TeamIncomeStep:  0.25,

		PrestigeDivisor:  1000,
		PrestigeMinLevel: 20,
		ReputationPct:    0.01,

		SkillLevelInterval: 5,
	}
}

// Casual returns easier balance for casual play
func Casual() Balance {
	cfg := Default()
	cfg.MaxOfflineSeconds = 24 * 60 * 60
	cfg.EventClickProb = 0.15
	cfg.EventOrderProb = 0.25
	cfg.BoostCostGrowth = 1.45
	cfg.TeamCostGrowth = 1.15
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.MaxOfflineSeconds = 8 * 60 * 60
	cfg.EventClickProb = 0.35
	cfg.EventOrderProb = 0.45
	cfg.BoostCostGrowth = 1.75
	cfg.TeamCostGrowth = 1.3
	cfg.TrendRewardMul = 1.5
	return cfg
}
