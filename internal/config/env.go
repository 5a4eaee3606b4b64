package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables
// Falls back to defaults if variables are not set
func FromEnv() Balance {
	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	cfg := Default()

	if val := getEnvInt("START_BALANCE"); val > 0 {
		cfg.StartBalance = int64(val)
	}
	if val := getEnvInt("BASE_CLICK_LIMIT"); val > 0 {
		cfg.BaseClickLimit = val
	}
	if val := getEnvInt("MAX_CLICK_LIMIT"); val > 0 {
		cfg.MaxClickLimit = val
	}
	if val := getEnvInt("MAX_OFFLINE_SECONDS"); val > 0 {
		cfg.MaxOfflineSeconds = float64(val)
	}
	if val := getEnvInt("EVENT_CLICK_INTERVAL"); val > 0 {
		cfg.EventClickInterval = val
	}
	if val := getEnvFloat("EVENT_CLICK_PROB"); val > 0 {
		cfg.EventClickProb = val
	}
	if val := getEnvFloat("EVENT_ORDER_PROB"); val > 0 {
		cfg.EventOrderProb = val
	}
	if val := getEnvFloat("TREND_REWARD_MUL"); val > 0 {
		cfg.TrendRewardMul = val
	}
	if val := getEnvFloat("TREND_DURATION_HOURS"); val > 0 {
		cfg.TrendDurationHours = val
	}
	if val := getEnvFloat("BOOST_COST_GROWTH"); val > 0 {
		cfg.BoostCostGrowth = val
	}
	if val := getEnvFloat("PRESTIGE_DIVISOR"); val > 0 {
		cfg.PrestigeDivisor = val
	}
	if val := getEnvInt("PRESTIGE_MIN_LEVEL"); val > 0 {
		cfg.PrestigeMinLevel = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
