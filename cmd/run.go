package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/traino-dev/traino/internal/app"
	"github.com/traino-dev/traino/internal/coach"
	"github.com/traino-dev/traino/internal/config"
	"github.com/traino-dev/traino/internal/llm"
	"github.com/traino-dev/traino/internal/selfupdate"
	"github.com/traino-dev/traino/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
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

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: ignoring config:", err)
		cfg = config.Default()
	}

	kv := st.KV()
	opts := app.Options{
		ProgressStore: store.NewProgressStore(kv),
		Identity:      store.NewIdentity(kv),
	}

	provider, err := buildProvider(ctx, cfg, st.RequestLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running in offline mode with a canned coach.")
		provider = llm.NewOfflineProvider()
		opts.Offline = true
	}
	opts.Coach = coach.NewService(provider, coach.Persona{
		Name:  cfg.Coach.Name,
		Style: cfg.Coach.Style,
	}, coach.DefaultConfig())

	opts.LatestVersion = checkForUpdate(ctx)

	return app.Run(opts)
}

// buildProvider honors the config file first, then falls back to the
// environment.
func buildProvider(ctx context.Context, cfg config.Config, log store.RequestLog) (llm.Provider, error) {
	if cfg.Provider != "" {
		lcfg := llm.ConfigFromEnv()
		lcfg.Provider = cfg.Provider
		if cfg.Model != "" {
			lcfg.SetModel(cfg.Model)
		}
		if err := lcfg.Validate(); err != nil {
			return nil, err
		}
		return llm.NewProvider(ctx, lcfg, log)
	}
	return llm.NewProviderFromEnv(ctx, log)
}

// checkForUpdate does a quick best-effort release check so the home
// screen can mention a newer version. Failures are silent.
func checkForUpdate(ctx context.Context) string {
	if version == "(devel)" {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(3 * time.Second))
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}
