package cli

import (
	"fmt"
	"path/filepath"

	"github.com/drs-tools/drs/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hashSaltCmd)
}

var hashSaltCmd = &cobra.Command{
	Use:     "hash-salt:init",
	Aliases: []string{"dhsi", "setup:hash-salt"},
	Short:   "Write a hash salt to salt.txt if one does not exist",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		created, err := settings.EnsureHashSalt(root)
		if err != nil {
			return fmt.Errorf("initializing hash salt: %w", err)
		}
		if created {
			fmt.Fprintln(out, "Generating hash salt...")
			logger.Info("hash salt written", "path", filepath.Join(root, settings.HashSaltFile))
		} else {
			fmt.Fprintln(out, "Hash salt already exists.")
		}
		return nil
	},
}
