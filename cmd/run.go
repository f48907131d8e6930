package cmd

import (
	"fmt"

	"github.com/abhisek/intervu/internal/app"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/oracle"
	"github.com/abhisek/intervu/internal/report"
	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A missing LLM configuration is fatal here: the interviewer cannot run
// a session without its oracle.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	dataDir, err := store.DataDir()
	if err != nil {
		return fmt.Errorf("resolve data directory: %w", err)
	}

	controller := interview.NewController(oracle.New(provider, oracle.DefaultConfig()))
	saver := report.NewSaver(dataDir, st.InterviewRepo())

	return app.Run(app.Options{
		Controller: controller,
		Saver:      saver,
	})
}
