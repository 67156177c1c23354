package dto

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyBreakdownResponse is one month of the spending heatmap.
type MonthlyBreakdownResponse struct {
	Month        string                     `json:"month"`
	Income       decimal.Decimal            `json:"income"`
	Total        decimal.Decimal            `json:"total"`
	Essential    decimal.Decimal            `json:"essential"`
	NonEssential decimal.Decimal            `json:"nonEssential"`
	Categories   map[string]decimal.Decimal `json:"categories"`
}

// CategoryShareResponse is a category with its amount and share of spending.
type CategoryShareResponse struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// TrendsResponse is the spending heatmap over the trailing months.
type TrendsResponse struct {
	Months             []MonthlyBreakdownResponse   `json:"months"`
	MonthOverMonth     *domain.MonthOverMonthChange `json:"monthOverMonth,omitempty"`
	DailyVelocity      *DailyVelocityResponse       `json:"dailyVelocity,omitempty"`
	ExpenseIncomeRatio *float64                     `json:"expenseIncomeRatio"`
	TopCategory        *CategoryShareResponse       `json:"topCategory,omitempty"`
	TotalTransactions  int                          `json:"totalTransactions"`
	From               string                       `json:"from"`
	To                 string                       `json:"to"`
}

// DailyVelocityResponse compares this month's daily spend with last month's.
type DailyVelocityResponse struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	ChangePercent float64         `json:"changePercent"`
}

// IncomeExpenseResponse is the income against expense report.
type IncomeExpenseResponse struct {
	Timeframe         domain.AnalyticsTimeframe  `json:"timeframe"`
	From              string                     `json:"from"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpenses     decimal.Decimal            `json:"totalExpenses"`
	NetSavings        decimal.Decimal            `json:"netSavings"`
	SavingsRate       float64                    `json:"savingsRate"`
	IncomeCount       int                        `json:"incomeCount"`
	ExpenseCount      int                        `json:"expenseCount"`
	Months            []MonthlyBreakdownResponse `json:"months"`
	CategoryBreakdown []CategoryShareResponse    `json:"categoryBreakdown"`
}

// ForecastPointResponse is one day of the cashflow projection.
type ForecastPointResponse struct {
	Date             string          `json:"date"`
	ProjectedBalance decimal.Decimal `json:"projectedBalance"`
	PressureEvent    string          `json:"pressureEvent,omitempty"`
}

// HealthSummaryResponse is the weekly coaching snapshot.
type HealthSummaryResponse struct {
	AsOf                 time.Time               `json:"asOf"`
	Score                int                     `json:"score"`
	NonEssentialRatio    float64                 `json:"nonEssentialRatio"`
	WeeklyEssentialSpend decimal.Decimal         `json:"weeklyEssentialSpend"`
	LowBalanceRisk       bool                    `json:"lowBalanceRisk"`
	SpendingPressure     string                  `json:"spendingPressure"`
	Forecast             []ForecastPointResponse `json:"forecast"`
	RiskScore            int                     `json:"riskScore"`
	Level                domain.KillSwitchLevel  `json:"level"`
	DailyAllowance       decimal.Decimal         `json:"dailyAllowance"`
	RemainingSafeToSpend decimal.Decimal         `json:"remainingSafeToSpend"`
}

func toMonthlyBreakdownResponses(ms []domain.MonthlyBreakdown) []MonthlyBreakdownResponse {
	out := make([]MonthlyBreakdownResponse, len(ms))
	for i, m := range ms {
		out[i] = MonthlyBreakdownResponse{
			Month:        m.Month,
			Income:       m.Income,
			Total:        m.TotalExpense,
			Essential:    m.Essential,
			NonEssential: m.NonEssential,
			Categories:   m.ByCategory,
		}
	}
	return out
}

func toCategoryShareResponse(c domain.CategoryShare) CategoryShareResponse {
	return CategoryShareResponse{Name: c.Name, Amount: c.Amount, Percentage: c.Share}
}

// ToTrendsResponse converts a domain.TrendsReport to its DTO.
func ToTrendsResponse(r *domain.TrendsReport) TrendsResponse {
	out := TrendsResponse{
		Months:             toMonthlyBreakdownResponses(r.Months),
		MonthOverMonth:     r.MonthOverMonth,
		ExpenseIncomeRatio: r.ExpenseIncomeRatio,
		TotalTransactions:  r.TotalTransactions,
		From:               r.From.Format(dateLayout),
		To:                 r.To.Format(dateLayout),
	}
	if r.DailyVelocity != nil {
		out.DailyVelocity = &DailyVelocityResponse{
			Current:       r.DailyVelocity.Current,
			Previous:      r.DailyVelocity.Previous,
			ChangePercent: r.DailyVelocity.ChangePercent,
		}
	}
	if r.TopCategory != nil {
		top := toCategoryShareResponse(*r.TopCategory)
		out.TopCategory = &top
	}
	return out
}

// ToIncomeExpenseResponse converts a domain.IncomeExpenseReport to its DTO.
func ToIncomeExpenseResponse(r *domain.IncomeExpenseReport) IncomeExpenseResponse {
	out := IncomeExpenseResponse{
		Timeframe:         r.Timeframe,
		From:              r.From.Format(dateLayout),
		TotalIncome:       r.TotalIncome,
		TotalExpenses:     r.TotalExpenses,
		NetSavings:        r.NetSavings,
		SavingsRate:       r.SavingsRate,
		IncomeCount:       r.IncomeCount,
		ExpenseCount:      r.ExpenseCount,
		Months:            toMonthlyBreakdownResponses(r.Months),
		CategoryBreakdown: make([]CategoryShareResponse, len(r.CategoryBreakdown)),
	}
	for i, c := range r.CategoryBreakdown {
		out.CategoryBreakdown[i] = toCategoryShareResponse(c)
	}
	return out
}

// ToHealthSummaryResponse converts a domain.HealthSummary to its DTO.
func ToHealthSummaryResponse(h *domain.HealthSummary) HealthSummaryResponse {
	out := HealthSummaryResponse{
		AsOf:                 h.AsOf,
		Score:                h.Score,
		NonEssentialRatio:    h.NonEssentialRatio,
		WeeklyEssentialSpend: h.WeeklyEssentialSpend,
		LowBalanceRisk:       h.LowBalanceRisk,
		SpendingPressure:     h.SpendingPressure,
		Forecast:             make([]ForecastPointResponse, len(h.Forecast)),
		RiskScore:            h.RiskScore,
		Level:                h.Level,
		DailyAllowance:       h.DailyAllowance,
		RemainingSafeToSpend: h.RemainingSafeToSpend,
	}
	for i, p := range h.Forecast {
		out.Forecast[i] = ForecastPointResponse{
			Date:             p.Date.Format(dateLayout),
			ProjectedBalance: p.ProjectedBalance,
			PressureEvent:    p.PressureEvent,
		}
	}
	return out
}
