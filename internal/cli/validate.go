package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duckpond/quackchat/internal/script"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate script files",
	Long:  "Parse and validate one or more script files, reporting every problem found. Exits non-zero when any script is invalid.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			s, err := script.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Printf("✓ %s: %q, %d steps\n", path, s.Name, s.Len())
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d scripts invalid", failed, len(args))
		}
		return nil
	},
}
