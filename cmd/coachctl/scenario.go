package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/core/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/platform/config"
	"github.com/SscSPs/money_coach_app/internal/repositories/memory"
	"github.com/SscSPs/money_coach_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultScenarioUser = "scenario-user"

// scenarioFile is the TOML layout read by coachctl. Amounts are decimal strings or numbers.
//
//	user_id = "asha"
//	as_of = 2024-03-15T12:00:00+05:30
//
//	[config]
//	monthly_income = "50000"
//	emergency_buffer_percent = 15
//
//	[[config.obligations]]
//	name = "Rent"
//	amount = "15000"
//	due_day = 1
//
//	[[transactions]]
//	timestamp = 2024-03-01T10:00:00+05:30
//	amount = "50000"
//	direction = "income"
//	category = "Salary"
type scenarioFile struct {
	UserID       string                `toml:"user_id"`
	AsOf         *time.Time            `toml:"as_of"`
	Config       *scenarioConfig       `toml:"config"`
	Transactions []scenarioTransaction `toml:"transactions"`
}

type scenarioConfig struct {
	MonthlyIncome          decimal.Decimal      `toml:"monthly_income"`
	EmergencyBufferPercent *float64             `toml:"emergency_buffer_percent"`
	Obligations            []scenarioObligation `toml:"obligations"`
}

type scenarioObligation struct {
	Name   string          `toml:"name"`
	Amount decimal.Decimal `toml:"amount"`
	DueDay int             `toml:"due_day"`
}

type scenarioTransaction struct {
	ID          string          `toml:"id"`
	Timestamp   time.Time       `toml:"timestamp"`
	Amount      decimal.Decimal `toml:"amount"`
	Direction   string          `toml:"direction"`
	Category    string          `toml:"category"`
	Description string          `toml:"description"`
}

// scenario is a loaded scenario: services over an in-memory ledger holding the file's data.
type scenario struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	userID   string
	asOf     time.Time
}

func decodeScenario(path string) (*scenarioFile, error) {
	var f scenarioFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("scenario %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &f, nil
}

// loadScenario reads path and seeds fresh in-memory stores with it.
// asOfFlag, when set, overrides the file's as_of.
func loadScenario(ctx context.Context, cfg *config.Config, path, asOfFlag string) (*scenario, error) {
	f, err := decodeScenario(path)
	if err != nil {
		return nil, err
	}

	s := &scenario{
		cfg:    cfg,
		userID: f.UserID,
		asOf:   time.Now().In(cfg.Location),
	}
	if s.userID == "" {
		s.userID = defaultScenarioUser
	}
	switch {
	case asOfFlag != "":
		if s.asOf, err = utils.ParseAsOf(asOfFlag, cfg.Location); err != nil {
			return nil, err
		}
	case f.AsOf != nil:
		s.asOf = f.AsOf.In(cfg.Location)
	}

	repos := memory.NewRepositoryProvider()
	s.services = services.NewServiceContainer(cfg, repos)

	if f.Config != nil {
		req := dto.FinancialConfigRequest{
			MonthlyIncome:          f.Config.MonthlyIncome,
			EmergencyBufferPercent: f.Config.EmergencyBufferPercent,
		}
		for _, ob := range f.Config.Obligations {
			req.FixedObligations = append(req.FixedObligations, dto.FixedObligationRequest{
				Name: ob.Name, Amount: ob.Amount, DueDayOfMonth: ob.DueDay,
			})
		}
		if _, err := s.services.Config.SaveConfig(ctx, s.userID, req); err != nil {
			return nil, fmt.Errorf("scenario config: %w", err)
		}
	}

	// History is seeded straight into the ledger: the kill-switch only guards new spending.
	for i, st := range f.Transactions {
		txn, err := st.toDomain(s.userID)
		if err != nil {
			return nil, fmt.Errorf("scenario transaction %d: %w", i+1, err)
		}
		if err := repos.LedgerRepo.AppendTransaction(ctx, txn); err != nil {
			return nil, fmt.Errorf("scenario transaction %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (st scenarioTransaction) toDomain(userID string) (domain.Transaction, error) {
	dir, err := domain.ParseDirection(st.Direction)
	if err != nil {
		return domain.Transaction{}, err
	}
	id := st.ID
	if id == "" {
		id = uuid.NewString()
	}
	txn := domain.Transaction{
		TransactionID: id,
		UserID:        userID,
		Timestamp:     st.Timestamp,
		Amount:        st.Amount,
		Direction:     dir,
		Category:      strings.TrimSpace(st.Category),
		Description:   strings.TrimSpace(st.Description),
		AuditFields: domain.AuditFields{
			CreatedAt:     st.Timestamp,
			CreatedBy:     userID,
			LastUpdatedAt: st.Timestamp,
			LastUpdatedBy: userID,
		},
	}
	return txn, txn.Validate()
}
