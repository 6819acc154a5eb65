package cli

import (
	"fmt"
	"io"

	"github.com/drs-tools/drs/internal/config"
	"github.com/drs-tools/drs/internal/expand"
	"github.com/drs-tools/drs/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "settings:generate",
	Aliases: []string{"dsg"},
	Short:   "Generate the Drupal settings files",
	Long: `Copy the recommended settings templates into sites/default without
overwriting existing files, expand ${...} placeholders in the copied files and
make sure settings.php requires the recommended settings include.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, paths, err := loadProject()
		if err != nil {
			return err
		}

		cfg, err := config.Initialize(paths.Root, paths.WebRoot, paths.Package)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		for _, src := range cfg.Sources {
			logger.Debug("loaded configuration", "path", src)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generating settings in %s\n", paths.Multisite)

		s := settings.NewScaffolder(paths, expand.New(cfg.Export()), logger)
		result, err := s.Generate()
		printResult(out, result)
		if err != nil {
			return fmt.Errorf("generating settings: %w", err)
		}
		return nil
	},
}

func printResult(w io.Writer, r *settings.Result) {
	if r == nil {
		return
	}
	for _, p := range r.Copied {
		fmt.Fprintf(w, "  [ OK ] Created %s\n", p)
	}
	for _, p := range r.Skipped {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", p)
	}
	for _, pattern := range r.Appended {
		fmt.Fprintf(w, "  [ OK ] Appended %s\n", pattern)
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "  [INFO] %s\n", d)
	}
}
