package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.LedgerBackend)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, "0 9 * * 1", cfg.WeeklySummaryCron)
	assert.Equal(t, []string{"Rent", "Utilities", "Insurance", "EMI", "Groceries", "Healthcare"}, cfg.EssentialCategories)
	assert.Equal(t, 3, cfg.Engine.IncomeLookbackMonths)
	assert.Equal(t, "5000", cfg.Engine.WeeklyOverspendThreshold.String())
	assert.True(t, cfg.CategoryPolicy().IsEssential("Rent"))
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("LEDGER_BACKEND", "MONGO")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("ESSENTIAL_CATEGORIES", " Rent , Fuel ,,")
	t.Setenv("ENGINE_VELOCITY_TOLERANCE", "1.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendMongo, cfg.LedgerBackend)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, []string{"Rent", "Fuel"}, cfg.EssentialCategories)
	assert.Equal(t, 1.5, cfg.Engine.VelocityTolerance)
}

func TestLoadConfig_Rejects(t *testing.T) {
	for key, value := range map[string]string{
		"LEDGER_BACKEND":                    "sqlite",
		"APP_TIMEZONE":                      "Mars/Olympus",
		"ENGINE_WEEKLY_OVERSPEND_THRESHOLD": "lots",
	} {
		t.Run(key, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
