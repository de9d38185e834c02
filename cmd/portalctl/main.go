package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studentloan-backend/internal/adapter/middleware"
	"studentloan-backend/internal/app"
	"studentloan-backend/internal/config"
	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/logging"
	processUC "studentloan-backend/internal/usecase/process"

	"github.com/spf13/cobra"
)

var envFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "portalctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Student loan portal operations CLI",
		Long: `portalctl runs one-off officer and maintenance tasks against the portal database:
schema migration, phase evaluation, bulk process updates and token issuance.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional env file loaded before the environment")
	cmd.AddCommand(
		newMigrateCmd(),
		newDetectPhaseCmd(),
		newEvaluateCmd(),
		newProcessCmd(),
		newTokenCmd(),
	)
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: "text", FilePath: cfg.LogFile}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// periodFlags registers --year/--term defaulting to the configured period.
type periodFlags struct{ year, term string }

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.year, "year", "", "Academic year (defaults to ACADEMIC_YEAR)")
	cmd.Flags().StringVar(&p.term, "term", "", "Term (defaults to TERM)")
}

func (p *periodFlags) resolve(s period.Settings) period.Period {
	return s.Resolve(period.Period{AcademicYear: p.year, Term: p.term})
}

func keys(userIDs []string, p period.Period) []period.StudentKey {
	out := make([]period.StudentKey, 0, len(userIDs))
	for _, u := range userIDs {
		out = append(out, period.StudentKey{UserID: u, Period: p})
	}
	return out
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the portal tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gdb, err := app.OpenDB(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := gdb.DB(); err == nil {
				defer sqlDB.Close()
			}
			logging.Info(cmd.Context(), "migration complete", "driver", cfg.DBDriver)
			return nil
		},
	}
}

func newDetectPhaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect-phase kind...",
		Short: "Classify a set of document kinds into a loan phase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := document.DetectPhase(args)
			if p == document.PhaseUndetermined {
				return printJSON(cmd.OutOrStdout(), map[string]any{"phase": nil, "determined": false})
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"phase": p, "determined": true})
		},
	}
}

func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func newEvaluateCmd() *cobra.Command {
	var pf periodFlags
	cmd := &cobra.Command{
		Use:   "evaluate user_id...",
		Short: "Run the phase transition check for students",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				p := pf.resolve(a.Cfg.Settings())
				res := processUC.BulkResult{Success: []string{}, Failed: []processUC.FailedItem{}}
				for _, k := range keys(args, p) {
					tr, err := a.Reviews.EvaluateTransition(cmd.Context(), k)
					switch {
					case err != nil:
						res.Failed = append(res.Failed, processUC.FailedItem{UserID: k.UserID, Error: err.Error()})
					case tr.Triggered:
						res.Success = append(res.Success, k.UserID)
						logging.Info(cmd.Context(), tr.Message, "user_id", k.UserID)
					}
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	pf.register(cmd)
	return cmd
}

func newProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Manage post-approval loan process records",
	}
	cmd.AddCommand(newProcessInitCmd(), newProcessUpdateCmd())
	return cmd
}

func newProcessInitCmd() *cobra.Command {
	var pf periodFlags
	cmd := &cobra.Command{
		Use:   "init user_id...",
		Short: "Create pending process records for students",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				return printJSON(cmd.OutOrStdout(), a.Processes.EnsureMany(cmd.Context(), keys(args, pf.resolve(a.Cfg.Settings()))))
			})
		},
	}
	pf.register(cmd)
	return cmd
}

func newProcessUpdateCmd() *cobra.Command {
	var (
		pf     periodFlags
		step   string
		status string
		note   string
	)
	cmd := &cobra.Command{
		Use:   "update user_id...",
		Short: "Set one process step for students",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				res := a.Processes.UpdateStepForMany(cmd.Context(), keys(args, pf.resolve(a.Cfg.Settings())),
					process.StepID(step), process.StepStatus(status), note)
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&step, "step", "", "Step id: document_collection, document_organization or bank_submission")
	cmd.Flags().StringVar(&status, "status", "", "Step status: pending, in_progress or completed")
	cmd.Flags().StringVar(&note, "note", "", "Optional note stored on the step")
	_ = cmd.MarkFlagRequired("step")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token officer_id",
		Short: "Issue a bearer token for an officer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			tok, err := middleware.IssueToken([]byte(cfg.JWTSecret), args[0], role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", middleware.RoleOfficer, "Token role: officer or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 8*time.Hour, "Token lifetime")
	return cmd
}
