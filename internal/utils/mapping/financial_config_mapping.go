package mapping

import (
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/models"
)

// ToModelFinancialConfig converts a domain FinancialConfig to a model FinancialConfig
func ToModelFinancialConfig(d domain.FinancialConfig) models.FinancialConfig {
	obs := make([]models.FixedObligation, len(d.FixedObligations))
	for i, ob := range d.FixedObligations {
		obs[i] = models.FixedObligation{Name: ob.Name, Amount: ob.Amount, DueDayOfMonth: ob.DueDayOfMonth}
	}
	return models.FinancialConfig{
		UserID:                 d.UserID,
		MonthlyIncome:          d.MonthlyIncome,
		FixedObligations:       obs,
		EmergencyBufferPercent: d.EmergencyBufferPercent,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialConfig converts a model FinancialConfig to a domain FinancialConfig
func ToDomainFinancialConfig(m models.FinancialConfig) domain.FinancialConfig {
	obs := make([]domain.FixedObligation, len(m.FixedObligations))
	for i, ob := range m.FixedObligations {
		obs[i] = domain.FixedObligation{Name: ob.Name, Amount: ob.Amount, DueDayOfMonth: ob.DueDayOfMonth}
	}
	return domain.FinancialConfig{
		UserID:                 m.UserID,
		MonthlyIncome:          m.MonthlyIncome,
		FixedObligations:       obs,
		EmergencyBufferPercent: m.EmergencyBufferPercent,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
