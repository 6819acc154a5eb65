package cli

import (
	"fmt"

	"github.com/drs-tools/drs/internal/branding"
	"github.com/drs-tools/drs/internal/settings"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair permissions on the multisite directory")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the settings files are in place",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, paths, err := loadProject()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		report, err := settings.Check(out, paths, doctorFix)
		if err != nil {
			return err
		}

		remaining := report.Problems - report.Fixed
		if remaining > 0 {
			fmt.Fprintf(out, "\nRun '%[1]s settings:generate' and '%[1]s hash-salt:init' to fix missing files.\n", branding.CLIName())
			return fmt.Errorf("%d problem(s) found", remaining)
		}
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	},
}
