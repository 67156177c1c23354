package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
)

// ConfigRepository stores one financial config per user.
type ConfigRepository struct {
	mu      sync.RWMutex
	configs map[string]domain.FinancialConfig
}

// NewConfigRepository creates an empty config store.
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{configs: make(map[string]domain.FinancialConfig)}
}

var _ portsrepo.FinancialConfigRepositoryFacade = (*ConfigRepository)(nil)

func (r *ConfigRepository) FindConfigByUserID(_ context.Context, userID string) (*domain.FinancialConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cfg.FixedObligations = append([]domain.FixedObligation(nil), cfg.FixedObligations...)
	return &cfg, nil
}

func (r *ConfigRepository) ListConfiguredUserIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// SaveConfig replaces the user's config, keeping the original creation audit fields.
func (r *ConfigRepository) SaveConfig(_ context.Context, cfg domain.FinancialConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.configs[cfg.UserID]; ok {
		cfg.CreatedAt = prev.CreatedAt
		cfg.CreatedBy = prev.CreatedBy
	}
	cfg.FixedObligations = append([]domain.FixedObligation(nil), cfg.FixedObligations...)
	r.configs[cfg.UserID] = cfg
	return nil
}
