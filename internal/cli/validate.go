package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drs-tools/drs/internal/branding"
	"github.com/drs-tools/drs/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "config:validate",
	Short: "Check the project config file against its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		path := filepath.Join(root, branding.ProjectConfig())
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(out, "  [SKIP] %s not found; defaults apply\n", path)
			return nil
		}

		result, err := config.ValidateFile(path)
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(out, "  [ OK ] %s\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			key := issue.Key
			if key == "" {
				key = "(root)"
			}
			fmt.Fprintf(out, "  [FAIL] %s: %s\n", key, issue.Message)
		}
		return fmt.Errorf("%s has %d issue(s)", path, len(result.Issues))
	},
}
