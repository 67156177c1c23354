package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBreakdown aggregates one calendar month of the ledger. Month is "YYYY-MM".
type MonthlyBreakdown struct {
	Month        string
	Income       decimal.Decimal
	TotalExpense decimal.Decimal
	Essential    decimal.Decimal
	NonEssential decimal.Decimal
	ByCategory   map[string]decimal.Decimal
}

// MonthOverMonthChange holds percentage changes between the last two months with data.
type MonthOverMonthChange struct {
	Total        float64
	Essential    float64
	NonEssential float64
	Income       float64
}

// DailyVelocity compares the current month's daily spend to the previous month's.
type DailyVelocity struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	ChangePercent float64
}

// CategoryShare is a category with its amount and share of total spending.
type CategoryShare struct {
	Name   string
	Amount decimal.Decimal
	Share  float64
}

// TrendsReport is the spending heatmap over the trailing months.
type TrendsReport struct {
	Months             []MonthlyBreakdown
	MonthOverMonth     *MonthOverMonthChange
	DailyVelocity      *DailyVelocity
	ExpenseIncomeRatio *float64
	TopCategory        *CategoryShare
	TotalTransactions  int
	From               time.Time
	To                 time.Time
}

// AnalyticsTimeframe selects the window of an income/expense report.
type AnalyticsTimeframe string

const (
	TimeframeMonth       AnalyticsTimeframe = "month"
	TimeframeThreeMonths AnalyticsTimeframe = "3months"
	TimeframeYear        AnalyticsTimeframe = "year"
)

// IncomeExpenseReport summarises income against expenses over a timeframe.
type IncomeExpenseReport struct {
	Timeframe         AnalyticsTimeframe
	From              time.Time
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	SavingsRate       float64
	IncomeCount       int
	ExpenseCount      int
	Months            []MonthlyBreakdown
	CategoryBreakdown []CategoryShare
}

// ForecastPoint is one day of the short cashflow projection.
type ForecastPoint struct {
	Date             time.Time
	ProjectedBalance decimal.Decimal
	PressureEvent    string
}

// HealthSummary is the weekly coaching snapshot.
type HealthSummary struct {
	UserID               string
	AsOf                 time.Time
	Score                int
	NonEssentialRatio    float64
	WeeklyEssentialSpend decimal.Decimal
	LowBalanceRisk       bool
	SpendingPressure     string
	Forecast             []ForecastPoint
	RiskScore            int
	Level                KillSwitchLevel
	DailyAllowance       decimal.Decimal
	RemainingSafeToSpend decimal.Decimal
}
