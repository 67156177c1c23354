package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"github.com/SscSPs/money_coach_app/internal/core/engine"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/platform/config"
	"github.com/SscSPs/money_coach_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	scenarioPath string
	asOf         string
	compact      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "coachctl",
		Short:         "Money coach engine runner",
		Long:          "Run the safe-to-spend, risk and kill-switch engine against a TOML scenario without a database.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&opts.scenarioPath, "file", "f", "scenario.toml", "Scenario file")
	root.PersistentFlags().StringVar(&opts.asOf, "as-of", "", "Evaluation time, RFC3339 or YYYY-MM-DD (overrides the scenario)")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false, "Print JSON on one line")

	root.AddCommand(
		newEvaluateCmd(opts),
		newCheckCmd(opts),
		newRecoveryCmd(opts),
		newSummaryCmd(opts),
		newTrendsCmd(opts),
		newAnalyticsCmd(opts),
		newTokenCmd(),
	)
	return root
}

func (o *rootOptions) load(cmd *cobra.Command) (*scenario, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return loadScenario(cmd.Context(), cfg, o.scenarioPath, o.asOf)
}

func (o *rootOptions) print(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// evaluationOutput bundles the three dashboard views.
type evaluationOutput struct {
	SafeToSpend dto.SafeToSpendResponse      `json:"safeToSpend"`
	Risk        dto.RiskResponse             `json:"risk"`
	KillSwitch  dto.KillSwitchStatusResponse `json:"killSwitch"`
}

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Compute safe-to-spend, the risk score and the kill-switch status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			result, err := s.services.Engine.ComputeSafeToSpend(ctx, s.userID, s.asOf)
			if err != nil {
				return err
			}
			risk, err := s.services.Engine.ComputeRiskScore(ctx, s.userID, result)
			if err != nil {
				return err
			}
			level := s.services.Engine.GetKillSwitchLevel(risk.Score)
			status := engine.Status(level, s.cfg.CategoryPolicy())
			return opts.print(cmd, evaluationOutput{
				SafeToSpend: dto.ToSafeToSpendResponse(result),
				Risk:        dto.ToRiskResponse(risk, level),
				KillSwitch:  dto.ToKillSwitchStatusResponse(&status, risk),
			})
		},
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var amount, category, direction, description string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Ask the kill-switch about a candidate transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			dir, err := domain.ParseDirection(direction)
			if err != nil {
				return err
			}
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			decision, err := s.services.Engine.EvaluateTransaction(cmd.Context(), s.userID, domain.CandidateTransaction{
				Amount:      amt,
				Category:    category,
				Direction:   dir,
				Description: description,
			}, s.asOf)
			if err != nil {
				return err
			}
			return opts.print(cmd, dto.ToKillSwitchDecisionResponse(decision))
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Transaction amount")
	cmd.Flags().StringVar(&category, "category", "", "Transaction category")
	cmd.Flags().StringVar(&direction, "direction", "expense", "income or expense")
	cmd.Flags().StringVar(&description, "description", "", "Free text")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newRecoveryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recovery",
		Short: "List the ways out of the current kill-switch state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			plan, risk, err := s.services.Engine.SimulateRecovery(cmd.Context(), s.userID, s.asOf)
			if err != nil {
				return err
			}
			return opts.print(cmd, dto.SimulateRecoveryResponse{
				RiskScore: risk.Score,
				Level:     s.services.Engine.GetKillSwitchLevel(risk.Score),
				Recovery:  dto.ToRecoveryPlanResponse(plan),
			})
		},
	}
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Weekly health summary with the cashflow forecast",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			h, err := s.services.Insights.HealthSummary(cmd.Context(), s.userID, s.asOf)
			if err != nil {
				return err
			}
			return opts.print(cmd, dto.ToHealthSummaryResponse(h))
		},
	}
}

func newTrendsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Monthly spending heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			rep, err := s.services.Insights.Trends(cmd.Context(), s.userID, s.asOf)
			if err != nil {
				return err
			}
			return opts.print(cmd, dto.ToTrendsResponse(rep))
		},
	}
}

func newAnalyticsCmd(opts *rootOptions) *cobra.Command {
	var timeframe string
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Income against expenses over a timeframe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := engine.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			rep, err := s.services.Insights.IncomeExpense(cmd.Context(), s.userID, tf, s.asOf)
			if err != nil {
				return err
			}
			return opts.print(cmd, dto.ToIncomeExpenseResponse(rep))
		},
	}
	cmd.Flags().StringVar(&timeframe, "timeframe", "month", "month, 3months or year")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			token, err := utils.GenerateAccessToken(userID, cfg.JWTSecret, cfg.JWTIssuer, ttl, time.Now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID to put in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
