package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/studygen/internal/account"
	"github.com/abhisek/studygen/internal/app"
	"github.com/abhisek/studygen/internal/llm"
	"github.com/abhisek/studygen/internal/store"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// Optional .env in the working directory for API keys.
	_ = godotenv.Load()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if variant, err := st.SettingsRepo().Get(ctx, store.SettingTheme); err == nil && variant != "" {
		theme.Apply(variant)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY and try again.")
		return err
	}

	opts := app.Options{
		Store:    st,
		Provider: provider,
	}

	rec, err := st.AccountRepo().Load(ctx)
	if err != nil {
		return fmt.Errorf("load account: %w", err)
	}
	if rec != nil {
		opts.Acct = account.FromRecord(rec)
	}

	return app.Run(opts)
}
