package catalog

const (
	defaultCostGrowth    = 1.6
	specialOrderMinLevel = 4
)

// Default returns the compiled-in catalog. An overlay file can extend or
// replace entries, see LoadOverlay.
func Default() *Catalog {
	c, err := New(seedOrders(), seedBoosts(), seedTeam(), seedItems(),
		seedAchievements(), seedEvents(), seedSkills(), seedQuests())
	if err != nil {
		panic("built-in catalog invalid: " + err.Error())
	}
	return c
}

func seedOrders() []OrderTemplate {
	return []OrderTemplate{
		{Code: "social_avatar", Title: "Social media avatar", BaseEffort: 80, MinLevel: 1, Difficulty: "easy", EstimatedMinutes: 5},
		{Code: "business_card", Title: "Freelancer business card", BaseEffort: 100, MinLevel: 1, Difficulty: "easy", EstimatedMinutes: 7},
		{Code: "story_pack", Title: "Instagram story pack", BaseEffort: 200, MinLevel: 1, Difficulty: "easy", EstimatedMinutes: 10, RewardMul: 1.05},
		{Code: "community_cover", Title: "Community page cover", BaseEffort: 180, MinLevel: 1, Difficulty: "normal", EstimatedMinutes: 12},
		{Code: "cafe_logo", Title: "Logo for a cafe", BaseEffort: 300, MinLevel: 2, Difficulty: "normal", EstimatedMinutes: 20, RewardMul: 1.1},
		{Code: "startup_deck", Title: "Startup pitch deck", BaseEffort: 420, MinLevel: 2, Difficulty: "normal", EstimatedMinutes: 25, RewardMul: 1.15},
		{Code: "banner_pack", Title: "Ad banner pack", BaseEffort: 900, MinLevel: 3, Difficulty: "normal", EstimatedMinutes: 40, RewardMul: 1.05},
		{Code: "landing_hero", Title: "Landing page hero screen", BaseEffort: 600, MinLevel: 3, Difficulty: "normal", EstimatedMinutes: 35},
		{Code: "newsletter_plan", Title: "Newsletter content plan", BaseEffort: 1400, MinLevel: 4, Difficulty: "normal", EstimatedMinutes: 45, RewardMul: 1.05},
		{Code: "logo_redesign", Title: "Logo redesign", BaseEffort: 800, MinLevel: 4, Difficulty: "hard", EstimatedMinutes: 45, RewardMul: 1.1},
		{Code: "holiday_merch", Title: "Holiday merch for subscribers", BaseEffort: 1600, MinLevel: 4, Difficulty: "normal", EstimatedMinutes: 50, RewardMul: 1.3, Rarity: "holiday", AppearanceWeight: 0.15},
		{Code: "halloween_promo", Title: "Halloween promo page", BaseEffort: 1900, MinLevel: 5, Difficulty: "hard", EstimatedMinutes: 55, RewardMul: 1.2, Rarity: "holiday", AppearanceWeight: 0.12},
		{Code: "mini_brandbook", Title: "Mini brand book", BaseEffort: 1200, MinLevel: 5, Difficulty: "hard", EstimatedMinutes: 60},
		{Code: "ux_audit", Title: "Mobile app UX audit", BaseEffort: 2200, MinLevel: 6, Difficulty: "hard", EstimatedMinutes: 75},
		{Code: "nft_drop", Title: "Collectible NFT drop", BaseEffort: 2600, MinLevel: 7, Difficulty: "hard", EstimatedMinutes: 90, RewardMul: 1.35, Rarity: "rare", AppearanceWeight: 0.25},
		{Code: "app_redesign", Title: "App redesign, core flows", BaseEffort: 3000, MinLevel: 8, Difficulty: "hard", EstimatedMinutes: 110},
		{Code: "vr_showroom", Title: "Virtual showroom in VR", BaseEffort: 4800, MinLevel: 11, Difficulty: "expert", EstimatedMinutes: 130, RewardMul: 1.4, Rarity: "rare", AppearanceWeight: 0.2},
		{Code: "corporate_branding", Title: "Corporate branding package", BaseEffort: 4200, MinLevel: 10, Difficulty: "expert", EstimatedMinutes: 140, RewardMul: 1.15},
		{Code: "company_site", Title: "Company site, five screens", BaseEffort: 5500, MinLevel: 12, Difficulty: "expert", EstimatedMinutes: 160},
		{Code: "global_campaign", Title: "International brand campaign", BaseEffort: 8000, MinLevel: 15, Difficulty: "expert", EstimatedMinutes: 210, RewardMul: 1.2},
		{Code: "global_rebrand", Title: "Global rebranding", BaseEffort: 12000, MinLevel: 18, Difficulty: "expert", EstimatedMinutes: 280, RewardMul: 1.25},
		{Code: "festival_identity", Title: "Special: festival identity", BaseEffort: 1800, MinLevel: specialOrderMinLevel, Difficulty: "hard", EstimatedMinutes: 90, RewardMul: 1.8, Special: true},
	}
}

func seedBoosts() []BoostDef {
	return []BoostDef{
		{Code: "reward_mastery", Name: "Fee mastery", Type: BoostReward, BaseCost: 320, Growth: defaultCostGrowth, StepValue: 0.15, MinLevel: 1},
		{Code: "inspiration", Name: "First mockup", Type: BoostPowerAdd, BaseCost: 400, Growth: defaultCostGrowth, StepValue: 10, MinLevel: 1},
		{Code: "pixel_perfect", Name: "Pixel perfectionist", Type: BoostPowerAdd, BaseCost: 800, Growth: defaultCostGrowth, StepValue: 15, MinLevel: 2},
		{Code: "bright_idea", Name: "Idea in mind", Type: BoostPowerAdd, BaseCost: 1500, Growth: defaultCostGrowth, StepValue: 25, MinLevel: 3},
		{Code: "divine_gradient", Name: "Divine gradient", Type: BoostPowerAdd, BaseCost: 2500, Growth: defaultCostGrowth, StepValue: 50, MinLevel: 6},
		{Code: "design_grid", Name: "Design grid", Type: BoostPowerAdd, BaseCost: 5000, Growth: defaultCostGrowth, StepValue: 120, MinLevel: 10},
		{Code: "interface_senior", Name: "Interface senior", Type: BoostPowerAdd, BaseCost: 10000, Growth: defaultCostGrowth, StepValue: 400, MinLevel: 14},
		{Code: "design_guru", Name: "Design guru", Type: BoostPowerAdd, BaseCost: 25000, Growth: defaultCostGrowth, StepValue: 1000, MinLevel: 16},
		{Code: "passive_stream", Name: "Passive stream", Type: BoostPassive, BaseCost: 420, Growth: defaultCostGrowth, StepValue: 0.12, MinLevel: 1},
		{Code: "learning_sprint", Name: "Learning sprint", Type: BoostXP, BaseCost: 560, Growth: defaultCostGrowth, StepValue: 0.12, MinLevel: 1},
		{Code: "crit_feedback", Name: "Critical feedback", Type: BoostCrit, BaseCost: 42000, Growth: defaultCostGrowth, StepValue: 0.03, MinLevel: 3, CritMultiplier: 1.5},
		{Code: "quality_control", Name: "Quality control", Type: BoostEventProtection, BaseCost: 760, Growth: defaultCostGrowth, StepValue: 0.12, MinLevel: 3},
		{Code: "project_insurance", Name: "Safety cushion", Type: BoostEventShield, BaseCost: 900, Growth: defaultCostGrowth, StepValue: 1, MinLevel: 3},
		{Code: "studio_autopilot", Name: "Studio on autopilot", Type: BoostPassive, BaseCost: 760, Growth: defaultCostGrowth, StepValue: 0.08, MinLevel: 3},
		{Code: "combo_references", Name: "Combo references", Type: BoostCombo, BaseCost: 56000, Growth: defaultCostGrowth, StepValue: 0.25, MinLevel: 3, ComboCap: 2.0},
		{Code: "team_synergy", Name: "Team synergy", Type: BoostTeamIncome, BaseCost: 860, Growth: defaultCostGrowth, StepValue: 0.10, MinLevel: 3},
		{Code: "ergonomics", Name: "Ergo comfort", Type: BoostClickCap, BaseCost: 900, Growth: defaultCostGrowth, StepValue: 2, MinLevel: 3},
		{Code: "soft_briefs", Name: "Softer briefs", Type: BoostEffortRelief, BaseCost: 980, Growth: defaultCostGrowth, StepValue: 0.04, MinLevel: 5},
		{Code: "quick_briefs", Name: "Quick start", Type: BoostFreeStart, BaseCost: 1040, Growth: defaultCostGrowth, StepValue: 0.05, MinLevel: 5},
		{Code: "loyal_contractors", Name: "Loyal contractors", Type: BoostTeamDiscount, BaseCost: 1080, Growth: defaultCostGrowth, StepValue: 0.06, MinLevel: 5},
		{Code: "deep_offline", Name: "Deep offline", Type: BoostOfflineCap, BaseCost: 1140, Growth: defaultCostGrowth, StepValue: 10800, MinLevel: 5},
		{Code: "tight_deadlines", Name: "Speed bonus", Type: BoostRushReward, BaseCost: 1200, Growth: defaultCostGrowth, StepValue: 0.07, MinLevel: 5},
		{Code: "gear_tuning", Name: "Studio tuning", Type: BoostEquipmentEff, BaseCost: 1280, Growth: defaultCostGrowth, StepValue: 0.06, MinLevel: 5},
		{Code: "night_flow", Name: "Night flow", Type: BoostNightPassive, BaseCost: 1360, Growth: defaultCostGrowth, StepValue: 0.15, MinLevel: 5},
		{Code: "wholesale", Name: "Wholesale purchasing", Type: BoostShopDiscount, BaseCost: 1420, Growth: defaultCostGrowth, StepValue: 0.05, MinLevel: 5},
		{Code: "premium_projects", Name: "Premium projects", Type: BoostHighTierReward, BaseCost: 1500, Growth: defaultCostGrowth, StepValue: 0.10, MinLevel: 5},
	}
}

func seedTeam() []TeamRoleDef {
	return []TeamRoleDef{
		{Code: "junior", Name: "Junior Designer", BaseIncomePerMin: 4, BaseCost: 100, MinLevel: 2},
		{Code: "middle", Name: "Middle Designer", BaseIncomePerMin: 10, BaseCost: 300, MinLevel: 3},
		{Code: "senior", Name: "Senior Designer", BaseIncomePerMin: 22, BaseCost: 800, MinLevel: 4},
		{Code: "pm", Name: "Project Manager", BaseIncomePerMin: 35, BaseCost: 1200, MinLevel: 5},
		{Code: "director", Name: "Creative Director", BaseIncomePerMin: 60, BaseCost: 2500, MinLevel: 12},
	}
}

func seedItems() []ItemDef {
	return []ItemDef{
		{Code: "laptop_t1", Name: "NeoBook laptop", Slot: SlotLaptop, Tier: 1, BonusType: ItemPowerPct, BonusValue: 0.05, Price: 250, MinLevel: 1},
		{Code: "laptop_t2", Name: "PixelForge laptop", Slot: SlotLaptop, Tier: 2, BonusType: ItemPowerPct, BonusValue: 0.10, Price: 500, MinLevel: 2},
		{Code: "laptop_t3", Name: "Aurora Pro laptop", Slot: SlotLaptop, Tier: 3, BonusType: ItemPowerPct, BonusValue: 0.15, Price: 900, MinLevel: 3},

		{Code: "phone_t1", Name: "City Lite phone", Slot: SlotPhone, Tier: 1, BonusType: ItemPassivePct, BonusValue: 0.03, Price: 200, MinLevel: 1},
		{Code: "phone_t2", Name: "Pulse Max phone", Slot: SlotPhone, Tier: 2, BonusType: ItemPassivePct, BonusValue: 0.06, Price: 400, MinLevel: 2},
		{Code: "phone_t3", Name: "Nova Edge phone", Slot: SlotPhone, Tier: 3, BonusType: ItemPassivePct, BonusValue: 0.10, Price: 750, MinLevel: 3},

		{Code: "tablet_t1", Name: "TabFlow tablet", Slot: SlotTablet, Tier: 1, BonusType: ItemEffortPct, BonusValue: 0.02, Price: 300, MinLevel: 1},
		{Code: "tablet_t2", Name: "SketchWave tablet", Slot: SlotTablet, Tier: 2, BonusType: ItemEffortPct, BonusValue: 0.04, Price: 600, MinLevel: 2},
		{Code: "tablet_t3", Name: "FrameMaster tablet", Slot: SlotTablet, Tier: 3, BonusType: ItemEffortPct, BonusValue: 0.06, Price: 950, MinLevel: 3},

		{Code: "monitor_t1", Name: "PixelWide monitor", Slot: SlotMonitor, Tier: 1, BonusType: ItemRewardPct, BonusValue: 0.04, Price: 350, MinLevel: 1},
		{Code: "monitor_t2", Name: "VisionGrid monitor", Slot: SlotMonitor, Tier: 2, BonusType: ItemRewardPct, BonusValue: 0.08, Price: 700, MinLevel: 2},
		{Code: "monitor_t3", Name: "UltraCanvas monitor", Slot: SlotMonitor, Tier: 3, BonusType: ItemRewardPct, BonusValue: 0.12, Price: 1050, MinLevel: 3},

		{Code: "chair_t1", Name: "Cafe chair", Slot: SlotChair, Tier: 1, BonusType: ItemClickCap, BonusValue: 0, Price: 150, MinLevel: 1},
		{Code: "chair_t2", Name: "Balance chair", Slot: SlotChair, Tier: 2, BonusType: ItemClickCap, BonusValue: 1, Price: 400, MinLevel: 2},
		{Code: "chair_t3", Name: "Flow chair", Slot: SlotChair, Tier: 3, BonusType: ItemClickCap, BonusValue: 1, Price: 600, MinLevel: 3},
		{Code: "chair_t4", Name: "Gravity chair", Slot: SlotChair, Tier: 4, BonusType: ItemClickCap, BonusValue: 2, Price: 1000, MinLevel: 4},

		{Code: "client_contract", Name: "Client talisman", Slot: SlotCharm, Tier: 1, BonusType: ItemEffortPct, BonusValue: 0.03, Price: 0, MinLevel: 2, Obtain: "quest"},
		{Code: "talent_badge", Name: "Talent badge", Slot: SlotCharm, Tier: 1, BonusType: ItemRewardPct, BonusValue: 0.02, Price: 0, MinLevel: 1, Obtain: "achievement"},
		{Code: "poster_art", Name: "Inspiration art poster", Slot: SlotCharm, Tier: 2, BonusType: ItemRewardPct, BonusValue: 0.03, Price: 900, MinLevel: 8},
		{Code: "art_director_trophy", Name: "Art director trophy", Slot: SlotCharm, Tier: 2, BonusType: ItemPassivePct, BonusValue: 0.04, Price: 0, MinLevel: 5, Obtain: "quest"},
		{Code: "desk_printer", Name: "Team printer", Slot: SlotCharm, Tier: 3, BonusType: ItemPassivePct, BonusValue: 0.05, Price: 1500, MinLevel: 12},
	}
}

func seedAchievements() []AchievementDef {
	return []AchievementDef{
		{Code: "click_100", Name: "Finger warm-up", Description: "Make 100 clicks.", Trigger: "clicks", Threshold: 100, Icon: "🖱️"},
		{Code: "click_1000", Name: "Click master", Description: "Make 1000 clicks.", Trigger: "clicks", Threshold: 1000, Icon: "⚡"},
		{Code: "order_first", Name: "First order", Description: "Finish your first order.", Trigger: "orders", Threshold: 1, Icon: "📋"},
		{Code: "order_20", Name: "Growing portfolio", Description: "Finish 20 orders.", Trigger: "orders", Threshold: 20, Icon: "🗂️"},
		{Code: "level_5", Name: "Apprentice", Description: "Reach level 5.", Trigger: "level", Threshold: 5, Icon: "📈"},
		{Code: "level_10", Name: "Studio legend", Description: "Reach level 10.", Trigger: "level", Threshold: 10, Icon: "🏅"},
		{Code: "balance_5000", Name: "Capitalist", Description: "Hold 5000 on your balance.", Trigger: "balance", Threshold: 5000, Icon: "💰"},
		{Code: "passive_2000", Name: "Income while asleep", Description: "Earn 2000 in passive income.", Trigger: "passive_income", Threshold: 2000, Icon: "💤"},
		{Code: "team_3", Name: "A studio of your own", Description: "Hire or level 3 team members.", Trigger: "team", Threshold: 3, Icon: "👥"},
		{Code: "wardrobe_5", Name: "Collector", Description: "Own 5 pieces of equipment.", Trigger: "items", Threshold: 5, Icon: "🎽"},
	}
}

func seedEvents() []EventDef {
	return []EventDef{
		{Code: "idea_spark", Title: "Breakthrough! The client is thrilled", Kind: EventBonus, Weight: 5, MinLevel: 1,
			Effect: EventEffect{Money: 200}},
		{Code: "coffee_spill", Title: "The cat spilled coffee on the laptop", Kind: EventPenalty, Weight: 4, MinLevel: 1,
			Effect: EventEffect{MoneyPct: -0.05, Money: -150}},
		{Code: "spill_choice", Title: "Coffee everywhere. How do you cover it?", Kind: EventPenalty, Weight: 1, MinLevel: 1,
			Choices: []EventChoice{
				{Text: "Pay for repairs", Effect: EventEffect{MoneyPct: -0.05, Money: -150}},
				{Text: "Pull an unpaid all-nighter", Effect: EventEffect{XPPct: -0.05, XP: -50}},
			}},
		{Code: "viral_post", Title: "Viral post! Rewards up for a while", Kind: EventBuff, Weight: 3, MinLevel: 3, DurationSec: 600,
			Effect: EventEffect{Buff: &BuffEffect{RewardPct: 0.10}}},
		{Code: "client_tip", Title: "The client left a tip", Kind: EventBonus, Weight: 2, MinLevel: 2,
			Effect: EventEffect{Money: 350}},
		{Code: "deadline_crunch", Title: "Deadline crunch! Rewards dip briefly", Kind: EventBuff, Weight: 2, MinLevel: 4, DurationSec: 300,
			Effect: EventEffect{Buff: &BuffEffect{RewardPct: -0.10}}},
		{Code: "agency_feature", Title: "A blog featured your studio", Kind: EventBuff, Weight: 2, MinLevel: 5, DurationSec: 900,
			Effect: EventEffect{Buff: &BuffEffect{PassivePct: 0.05}}},
		{Code: "software_crash", Title: "The design suite crashed", Kind: EventPenalty, Weight: 1, MinLevel: 3,
			Effect: EventEffect{XPPct: -0.10, XP: -100}},
		{Code: "mentor_call", Title: "A mentor shared a trick", Kind: EventBonus, Weight: 2, MinLevel: 2,
			Effect: EventEffect{XP: 150}},
		{Code: "perfect_flow", Title: "Flow state! Clicks hit harder", Kind: EventBuff, Weight: 2, MinLevel: 4, DurationSec: 600,
			Effect: EventEffect{Buff: &BuffEffect{PowerPct: 0.15}}},
	}
}

func seedSkills() []SkillDef {
	return []SkillDef{
		{Code: "web_master", Name: "Web master", Branch: "web", Effect: SkillEffect{RewardPct: 0.05}, MinLevel: 5},
		{Code: "brand_evangelist", Name: "Brand evangelist", Branch: "brand", Effect: SkillEffect{RewardPct: 0.03, PassivePct: 0.02}, MinLevel: 10},
		{Code: "art_director", Name: "Art director", Branch: "art", Effect: SkillEffect{PassivePct: 0.05}, MinLevel: 5},
		{Code: "perfectionist", Name: "Perfectionist", Branch: "web", Effect: SkillEffect{PowerAdd: 1}, MinLevel: 5},
		{Code: "speed_runner", Name: "Speed runner", Branch: "web", Effect: SkillEffect{EffortPct: 0.03}, MinLevel: 10},
		{Code: "team_leader", Name: "Team leader", Branch: "brand", Effect: SkillEffect{PassivePct: 0.04}, MinLevel: 15},
		{Code: "sales_guru", Name: "Sales guru", Branch: "brand", Effect: SkillEffect{RewardPct: 0.06}, MinLevel: 15},
		{Code: "ui_alchemist", Name: "UI alchemist", Branch: "art", Effect: SkillEffect{PowerPct: 0.05}, MinLevel: 10},
		{Code: "automation_ninja", Name: "Automation ninja", Branch: "web", Effect: SkillEffect{PassivePct: 0.03, PowerAdd: 1}, MinLevel: 15},
		{Code: "brand_storyteller", Name: "Storyteller", Branch: "brand", Effect: SkillEffect{RewardPct: 0.04, XPPct: 0.05}, MinLevel: 20},
	}
}

func seedQuests() []QuestDef {
	return []QuestDef{
		{
			Code:     "hell_client",
			Name:     "Client from hell",
			MinLevel: 2,
			Traits:   []string{"mood", "budget", "respect", "speed"},
			Stages:   []string{"intro", "step1", "step2"},
			Flow: map[string]QuestStage{
				"intro": {
					Text: "The client wants everything purple, plus a unicorn. What now?",
					Options: []QuestOption{
						{Text: "Calmly apply the edits", Next: "step1", Delta: map[string]int{"mood": 1}},
						{Text: "Ask for extra budget", Next: "step1", Delta: map[string]int{"budget": 1}},
						{Text: "Pitch an alternative", Next: "step1", Delta: map[string]int{"respect": 1}},
					},
				},
				"step1": {
					Text: "The client forgot to send the assets. Your move?",
					Options: []QuestOption{
						{Text: "Remind them politely", Next: "step2", Delta: map[string]int{"mood": 1}},
						{Text: "Mock it up from stock art", Next: "step2", Delta: map[string]int{"respect": -1, "speed": 1}},
						{Text: "Ask for an upfront payment", Next: "step2", Delta: map[string]int{"budget": 1}},
					},
				},
				"step2": {
					Text: "Deadlines burn and edits keep piling up. How do you react?",
					Options: []QuestOption{
						{Text: "Schedule feedback rounds", Next: FinaleStage, Delta: map[string]int{"respect": 1}},
						{Text: "Paid extra sprint", Next: FinaleStage, Delta: map[string]int{"budget": 1}},
						{Text: "Heroically do it all", Next: FinaleStage, Delta: map[string]int{"speed": 1}},
					},
				},
			},
			Rewards: map[string]QuestReward{
				"default": {Money: 600, XP: 300, ItemCode: "client_contract"},
				"budget":  {Money: 800, XP: 250, ItemCode: "client_contract"},
				"mood":    {Money: 500, XP: 320, ItemCode: "client_contract"},
				"respect": {Money: 550, XP: 360, ItemCode: "client_contract"},
				"speed":   {Money: 650, XP: 280, ItemCode: "client_contract"},
			},
		},
		{
			Code:     "art_director",
			Name:     "The art director's path",
			MinLevel: 5,
			Traits:   []string{"vision", "team", "budget"},
			Stages:   []string{"intro", "step1", "step2"},
			Flow: map[string]QuestStage{
				"intro": {
					Text: "A major festival asks you to pitch the booth concept.",
					Options: []QuestOption{
						{Text: "Show a bold moodboard", Next: "step1", Delta: map[string]int{"vision": 1}},
						{Text: "Open with numbers and KPIs", Next: "step1", Delta: map[string]int{"budget": 1}},
						{Text: "Introduce the team", Next: "step1", Delta: map[string]int{"team": 1}},
					},
				},
				"step1": {
					Text: "The jury wants delivery details. How do you impress?",
					Options: []QuestOption{
						{Text: "Live illustration performance", Next: "step2", Delta: map[string]int{"vision": 1}},
						{Text: "Joint workshop with the client", Next: "step2", Delta: map[string]int{"team": 1}},
						{Text: "Break down the savings", Next: "step2", Delta: map[string]int{"budget": 1}},
					},
				},
				"step2": {
					Text: "Final call: the client hesitates. How do you close?",
					Options: []QuestOption{
						{Text: "Defend the idea with facts", Next: FinaleStage, Delta: map[string]int{"vision": 1}},
						{Text: "Back the team and split the work", Next: FinaleStage, Delta: map[string]int{"team": 1}},
						{Text: "Rework the estimate", Next: FinaleStage, Delta: map[string]int{"budget": 1}},
					},
				},
			},
			Rewards: map[string]QuestReward{
				"default": {Money: 900, XP: 420, ItemCode: "art_director_trophy"},
				"vision":  {Money: 1020, XP: 460, ItemCode: "art_director_trophy"},
				"team":    {Money: 940, XP: 480, ItemCode: "art_director_trophy"},
				"budget":  {Money: 1100, XP: 390, ItemCode: "art_director_trophy"},
			},
		},
		{
			Code:     "brand_show",
			Name:     "The brand show",
			MinLevel: 10,
			Traits:   []string{"network", "creativity", "discipline"},
			Stages:   []string{"intro", "step1", "step2"},
			Flow: map[string]QuestStage{
				"intro": {
					Text: "You launch your own show about design. Where to start?",
					Options: []QuestOption{
						{Text: "Invite a famous guest", Next: "step1", Delta: map[string]int{"network": 1}},
						{Text: "Craft an unusual intro", Next: "step1", Delta: map[string]int{"creativity": 1}},
						{Text: "Plan the whole season", Next: "step1", Delta: map[string]int{"discipline": 1}},
					},
				},
				"step1": {
					Text: "The premiere is close. What do you strengthen?",
					Options: []QuestOption{
						{Text: "Audience interaction", Next: "step2", Delta: map[string]int{"network": 1}},
						{Text: "An experimental format", Next: "step2", Delta: map[string]int{"creativity": 1}},
						{Text: "A strict task checklist", Next: "step2", Delta: map[string]int{"discipline": 1}},
					},
				},
				"step2": {
					Text: "The final episode decides the show's fate. Your move?",
					Options: []QuestOption{
						{Text: "Co-host with an opinion leader", Next: FinaleStage, Delta: map[string]int{"network": 1}},
						{Text: "Add a live art contest", Next: FinaleStage, Delta: map[string]int{"creativity": 1}},
						{Text: "Keep timing and script tight", Next: FinaleStage, Delta: map[string]int{"discipline": 1}},
					},
				},
			},
			Rewards: map[string]QuestReward{
				"default":    {Money: 1200, XP: 520, ItemCode: "talent_badge"},
				"network":    {Money: 1300, XP: 540, ItemCode: "talent_badge"},
				"creativity": {Money: 1180, XP: 580, ItemCode: "talent_badge"},
				"discipline": {Money: 1250, XP: 560, ItemCode: "talent_badge"},
			},
		},
	}
}
