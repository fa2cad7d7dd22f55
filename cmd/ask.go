package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/traino-dev/traino/internal/coach"
	"github.com/traino-dev/traino/internal/config"
	"github.com/traino-dev/traino/internal/llm"
	"github.com/traino-dev/traino/internal/markup"
	"github.com/traino-dev/traino/internal/progress"
	"github.com/traino-dev/traino/internal/store"
	"github.com/traino-dev/traino/internal/ui/components"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the coach one question without the full TUI",
	Long: `Send a single message to the coach and print the reply.

The exchange still counts toward your progress: the reply adds XP and
today is tracked as a training session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().Int("width", 80, "Render width for the reply")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return fmt.Errorf("message is empty")
	}
	width, _ := cmd.Flags().GetInt("width")

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

	provider, err := buildProvider(ctx, cfg, st.RequestLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Answering with a canned offline coach.")
		provider = llm.NewOfflineProvider()
	}
	svc := coach.NewService(provider, coach.Persona{
		Name:  cfg.Coach.Name,
		Style: cfg.Coach.Style,
	}, coach.DefaultConfig())

	kv := st.KV()
	identity := store.NewIdentity(kv)
	sessionID, err := identity.SessionID(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not load session identity:", err)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeOneShot)
	reply, err := svc.Send(ctx, coach.SendInput{Message: message, SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("coach request: %w", err)
	}

	fmt.Println(components.RenderMarkup(markup.Parse(reply), width))

	// A one-shot exchange still advances progress.
	ps := store.NewProgressStore(kv)
	outcome, err := advanceProgress(ctx, ps)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not record progress:", err)
		return nil
	}
	if outcome.leveledUp {
		fmt.Printf("\n★ Level up! You reached level %d.\n", outcome.newLevel)
	}
	return nil
}

type progressOutcome struct {
	leveledUp bool
	newLevel  int
}

// advanceProgress applies one coach reply to the stored record: today
// becomes a tracked session and the reply adds XP.
func advanceProgress(ctx context.Context, ps *store.ProgressStore) (progressOutcome, error) {
	p, err := ps.Load(ctx)
	if err != nil {
		p = progress.Progress{}
	}
	p = progress.TrackSession(p, progress.DateOf(time.Now()))
	p, leveled, lvl := progress.ApplyReply(p)
	if err := ps.Save(ctx, p); err != nil {
		return progressOutcome{}, err
	}
	return progressOutcome{leveledUp: leveled, newLevel: lvl}, nil
}
