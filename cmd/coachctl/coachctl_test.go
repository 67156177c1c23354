package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const steadyScenario = `
user_id = "asha"
as_of = 2024-03-15T12:00:00Z

[config]
monthly_income = "50000"
emergency_buffer_percent = 10

[[config.obligations]]
name = "Rent"
amount = "15000"
due_day = 1

[[config.obligations]]
name = "EMI"
amount = 5000
due_day = 20

[[transactions]]
timestamp = 2024-01-01T10:00:00Z
amount = "50000"
direction = "income"
category = "Salary"

[[transactions]]
timestamp = 2024-01-02T10:00:00Z
amount = "15000"
direction = "expense"
category = "Rent"

[[transactions]]
timestamp = 2024-02-01T10:00:00Z
amount = "50000"
direction = "credit"
category = "Salary"

[[transactions]]
timestamp = 2024-02-02T10:00:00Z
amount = "15000"
direction = "debit"
category = "Rent"

[[transactions]]
timestamp = 2024-03-01T10:00:00Z
amount = "50000"
direction = "income"
category = "Salary"

[[transactions]]
timestamp = 2024-03-02T10:00:00Z
amount = "15000"
direction = "expense"
category = "Rent"
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LEDGER_BACKEND", "postgres")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEvaluate(t *testing.T) {
	path := writeScenario(t, steadyScenario)

	out, err := run(t, "evaluate", "--file", path)
	require.NoError(t, err, out)

	var got evaluationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.LevelGreen, got.Risk.Level)
	assert.False(t, got.KillSwitch.Active)
	require.NotNil(t, got.SafeToSpend.IncomeCoverageRatio)
	assert.Equal(t, 2.5, *got.SafeToSpend.IncomeCoverageRatio)
}

func TestCheck_IncomeIsAlwaysAllowed(t *testing.T) {
	path := writeScenario(t, steadyScenario)

	out, err := run(t, "check", "--file", path, "--amount", "2000", "--direction", "income", "--compact")
	require.NoError(t, err, out)

	var got dto.KillSwitchDecisionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Allowed)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1, "compact output is one line")
}

func TestCheck_RequiresAmount(t *testing.T) {
	path := writeScenario(t, steadyScenario)

	_, err := run(t, "check", "--file", path)

	assert.Error(t, err)
}

func TestEvaluate_WithoutConfigFails(t *testing.T) {
	path := writeScenario(t, `user_id = "nobody"`)

	_, err := run(t, "evaluate", "--file", path)

	assert.ErrorContains(t, err, "onboarding")
}

func TestScenario_RejectsUnknownKeys(t *testing.T) {
	path := writeScenario(t, steadyScenario+"\nbalance = 10\n")

	_, err := run(t, "trends", "--file", path)

	assert.ErrorContains(t, err, "unknown keys")
}

func TestAnalytics_AsOfFlagOverridesScenario(t *testing.T) {
	path := writeScenario(t, steadyScenario)

	out, err := run(t, "analytics", "--file", path, "--as-of", "2024-02-15", "--timeframe", "month")
	require.NoError(t, err, out)

	var got dto.IncomeExpenseResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-01-15", got.From)
	assert.Equal(t, 1, got.IncomeCount)
}

func TestToken(t *testing.T) {
	out, err := run(t, "token", "--user", "asha", "--ttl", "1h")
	require.NoError(t, err, out)

	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
}
