package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duckpond/quackchat/internal/script"
)

func init() {
	rootCmd.AddCommand(scriptsCmd)
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List available scripts",
	Long:  "List the scripts quackchat can play: files from the script search paths plus the built-in lessons.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := script.LoadAll(cfg.ScriptsDir)
		if err != nil {
			return err
		}

		if len(all) == 0 {
			fmt.Println("No scripts found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTEPS\tSOURCE\tDESCRIPTION")
		for _, s := range all {
			source := s.Source
			if source == "" {
				source = "built-in"
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Name, s.Len(), source, s.Description)
		}
		return w.Flush()
	},
}
