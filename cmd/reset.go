package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/traino-dev/traino/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset training progress",
	Long: `Clear the stored progress record (level, XP, session history).

Pass --identity to also regenerate the anonymous session identifier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		identity, _ := cmd.Flags().GetBool("identity")

		if !yes {
			fmt.Print("This erases your level, XP and session history. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		kv := st.KV()

		if err := store.NewProgressStore(kv).Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress reset.")

		if identity {
			if err := store.NewIdentity(kv).Reset(ctx); err != nil {
				return fmt.Errorf("reset identity: %w", err)
			}
			fmt.Println("Session identity regenerated.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().Bool("identity", false, "Also regenerate the session identifier")
}
