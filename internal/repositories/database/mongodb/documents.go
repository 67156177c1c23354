package mongodb

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// transactionDocument is the BSON shape of a ledger entry. Amounts are Decimal128 so
// that Mongo aggregations stay exact.
type transactionDocument struct {
	ID            string               `bson:"_id"`
	UserID        string               `bson:"userId"`
	Date          time.Time            `bson:"date"`
	Amount        primitive.Decimal128 `bson:"amount"`
	Type          string               `bson:"type"`
	Category      string               `bson:"category"`
	Description   string               `bson:"description"`
	CreatedAt     time.Time            `bson:"createdAt"`
	CreatedBy     string               `bson:"createdBy"`
	LastUpdatedAt time.Time            `bson:"lastUpdatedAt"`
	LastUpdatedBy string               `bson:"lastUpdatedBy"`
}

type obligationDocument struct {
	Name    string               `bson:"name"`
	Amount  primitive.Decimal128 `bson:"amount"`
	DueDate int                  `bson:"dueDate"`
}

// configDocument is keyed by user ID.
type configDocument struct {
	UserID                 string               `bson:"_id"`
	MonthlyIncome          primitive.Decimal128 `bson:"monthlyIncome"`
	FixedObligations       []obligationDocument `bson:"fixedObligations"`
	EmergencyBufferPercent float64              `bson:"emergencyBufferPercent"`
	CreatedAt              time.Time            `bson:"createdAt"`
	CreatedBy              string               `bson:"createdBy"`
	LastUpdatedAt          time.Time            `bson:"lastUpdatedAt"`
	LastUpdatedBy          string               `bson:"lastUpdatedBy"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("amount %s does not fit Decimal128: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(v.String())
}

func toTransactionDocument(t domain.Transaction) (transactionDocument, error) {
	amount, err := toDecimal128(t.Amount)
	if err != nil {
		return transactionDocument{}, err
	}
	return transactionDocument{
		ID:            t.TransactionID,
		UserID:        t.UserID,
		Date:          t.Timestamp.UTC(),
		Amount:        amount,
		Type:          string(t.Direction),
		Category:      t.Category,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt.UTC(),
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt.UTC(),
		LastUpdatedBy: t.LastUpdatedBy,
	}, nil
}

func (d transactionDocument) toDomain() (domain.Transaction, error) {
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", d.ID, err)
	}
	return domain.Transaction{
		TransactionID: d.ID,
		UserID:        d.UserID,
		Timestamp:     d.Date,
		Amount:        amount.Abs(),
		Direction:     domain.Direction(d.Type),
		Category:      d.Category,
		Description:   d.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}, nil
}

func toConfigDocument(c domain.FinancialConfig) (configDocument, error) {
	income, err := toDecimal128(c.MonthlyIncome)
	if err != nil {
		return configDocument{}, err
	}
	obs := make([]obligationDocument, len(c.FixedObligations))
	for i, ob := range c.FixedObligations {
		amount, err := toDecimal128(ob.Amount)
		if err != nil {
			return configDocument{}, err
		}
		obs[i] = obligationDocument{Name: ob.Name, Amount: amount, DueDate: ob.DueDayOfMonth}
	}
	return configDocument{
		UserID:                 c.UserID,
		MonthlyIncome:          income,
		FixedObligations:       obs,
		EmergencyBufferPercent: c.EmergencyBufferPercent,
		CreatedAt:              c.CreatedAt.UTC(),
		CreatedBy:              c.CreatedBy,
		LastUpdatedAt:          c.LastUpdatedAt.UTC(),
		LastUpdatedBy:          c.LastUpdatedBy,
	}, nil
}

func (d configDocument) toDomain() (domain.FinancialConfig, error) {
	income, err := fromDecimal128(d.MonthlyIncome)
	if err != nil {
		return domain.FinancialConfig{}, fmt.Errorf("config %s: %w", d.UserID, err)
	}
	obs := make([]domain.FixedObligation, len(d.FixedObligations))
	for i, ob := range d.FixedObligations {
		amount, err := fromDecimal128(ob.Amount)
		if err != nil {
			return domain.FinancialConfig{}, fmt.Errorf("config %s obligation %q: %w", d.UserID, ob.Name, err)
		}
		obs[i] = domain.FixedObligation{Name: ob.Name, Amount: amount, DueDayOfMonth: ob.DueDate}
	}
	return domain.FinancialConfig{
		UserID:                 d.UserID,
		MonthlyIncome:          income,
		FixedObligations:       obs,
		EmergencyBufferPercent: d.EmergencyBufferPercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}, nil
}
