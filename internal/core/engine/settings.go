package engine

import "github.com/shopspring/decimal"

// Settings holds the tunable windows and thresholds of the engine.
// Zero fields are replaced by their defaults in Normalize.
type Settings struct {
	IncomeLookbackMonths      int
	DriftLookbackMonths       int
	DriftMinTransactions      int
	ExhaustionLookbackDays    int
	VelocityWindowDays        int
	VelocityTolerance         float64
	CategoryShareLimitPercent float64
	OverspendWeeks            int
	WeeklyOverspendThreshold  decimal.Decimal
	HealthLookbackDays        int
	ForecastDays              int
	LowBalanceThreshold       decimal.Decimal
}

// DefaultSettings returns the production thresholds.
func DefaultSettings() Settings {
	return Settings{
		IncomeLookbackMonths:      3,
		DriftLookbackMonths:       3,
		DriftMinTransactions:      10,
		ExhaustionLookbackDays:    30,
		VelocityWindowDays:        7,
		VelocityTolerance:         1.2,
		CategoryShareLimitPercent: 40,
		OverspendWeeks:            4,
		WeeklyOverspendThreshold:  decimal.NewFromInt(5000),
		HealthLookbackDays:        30,
		ForecastDays:              7,
		LowBalanceThreshold:       decimal.NewFromInt(2000),
	}
}

// Normalize fills every unset field from DefaultSettings.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	if s.IncomeLookbackMonths <= 0 {
		s.IncomeLookbackMonths = d.IncomeLookbackMonths
	}
	if s.DriftLookbackMonths <= 0 {
		s.DriftLookbackMonths = d.DriftLookbackMonths
	}
	if s.DriftMinTransactions <= 0 {
		s.DriftMinTransactions = d.DriftMinTransactions
	}
	if s.ExhaustionLookbackDays <= 0 {
		s.ExhaustionLookbackDays = d.ExhaustionLookbackDays
	}
	if s.VelocityWindowDays <= 0 {
		s.VelocityWindowDays = d.VelocityWindowDays
	}
	if s.VelocityTolerance <= 0 {
		s.VelocityTolerance = d.VelocityTolerance
	}
	if s.CategoryShareLimitPercent <= 0 {
		s.CategoryShareLimitPercent = d.CategoryShareLimitPercent
	}
	if s.OverspendWeeks <= 0 {
		s.OverspendWeeks = d.OverspendWeeks
	}
	if !s.WeeklyOverspendThreshold.IsPositive() {
		s.WeeklyOverspendThreshold = d.WeeklyOverspendThreshold
	}
	if s.HealthLookbackDays <= 0 {
		s.HealthLookbackDays = d.HealthLookbackDays
	}
	if s.ForecastDays <= 0 {
		s.ForecastDays = d.ForecastDays
	}
	if !s.LowBalanceThreshold.IsPositive() {
		s.LowBalanceThreshold = d.LowBalanceThreshold
	}
	return s
}
