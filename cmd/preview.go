package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/traino-dev/traino/internal/markup"
	"github.com/traino-dev/traino/internal/ui/components"
)

// sampleText exercises every construct the renderer supports.
const sampleText = `## Push Day

Warm up first, then work through the main block.

### Main block

1. Bench press: 4 sets of **8 reps**
2. Incline dumbbell press: 3 sets of 10
3. Dips: 3 sets to *near* failure

### Notes

- Rest **90 seconds** between sets
- Stop a rep short of failure on the last set
- Log your top set weight`

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render coach-style text through the markup pipeline (no database)",
	Long: `Parse a text file (or stdin) and print it styled the way the chat
transcript would show a coach reply.

This is a stateless developer tool for checking how headings, lists,
bold and italic come out in the terminal. With no arguments and no
piped input it renders a built-in sample.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("width", 80, "Render width")
}

func runPreview(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	text, err := previewInput(args)
	if err != nil {
		return err
	}

	fmt.Println(components.RenderMarkup(markup.Parse(text), width))
	return nil
}

// previewInput picks the text source: file argument, piped stdin, or
// the built-in sample.
func previewInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	return sampleText, nil
}
