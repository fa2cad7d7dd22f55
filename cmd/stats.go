package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/traino-dev/traino/internal/progress"
	"github.com/traino-dev/traino/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ps := store.NewProgressStore(st.KV())
		p, err := ps.Load(context.Background())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		level := progress.Level(p.TotalMessages)
		xp := progress.LevelXP(p.TotalMessages)

		fmt.Printf("Level:              %d\n", level)
		fmt.Printf("XP:                 %d/%d  %s\n", xp, progress.XPPerLevel, xpBar(xp, progress.XPPerLevel))
		fmt.Printf("Messages exchanged: %d\n", p.TotalMessages)
		fmt.Printf("Coaching sessions:  %d\n", p.SessionsCount)
		fmt.Printf("First session:      %s\n", orNever(p.FirstSessionDate))
		fmt.Printf("Last session:       %s\n", orNever(p.LastSessionDate))
		return nil
	},
}

func xpBar(xp, per int) string {
	const width = 20
	filled := 0
	if per > 0 {
		filled = xp * width / per
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func orNever(date string) string {
	if date == "" {
		return "never"
	}
	return date
}
