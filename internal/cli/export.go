package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/drs-tools/drs/internal/branding"
	"github.com/drs-tools/drs/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	exportFormat string
	exportKey    string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "Output format (yaml, json, toml, env)")
	exportCmd.Flags().StringVar(&exportKey, "key", "", "Print a single value by dotted key (e.g. drupal.db.host)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "config:export",
	Short: "Print the configuration used for placeholder expansion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, paths, err := loadProject()
		if err != nil {
			return err
		}

		cfg, err := config.Initialize(paths.Root, paths.WebRoot, paths.Package)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		w := cmd.OutOrStdout()
		if exportKey != "" {
			_, err := fmt.Fprintln(w, cfg.Get(exportKey))
			return err
		}

		var out []byte
		switch exportFormat {
		case "json":
			out, err = json.MarshalIndent(cfg.Export(), "", "  ")
			if err == nil {
				out = append(out, '\n')
			}
		case "yaml":
			out, err = yaml.Marshal(cfg.Export())
		case "toml":
			out, err = toml.Marshal(cfg.Export())
		case "env":
			out = envLines(cfg)
		default:
			return fmt.Errorf("unknown format %q (want yaml, json, toml or env)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}

		_, err = w.Write(out)
		return err
	},
}

// envLines renders the configuration as the DRS_ variables that would
// reproduce it, one per line in key order.
func envLines(cfg *config.Config) []byte {
	values := cfg.Export()
	var b strings.Builder
	for _, key := range cfg.Keys() {
		fmt.Fprintf(&b, "%s=%s\n", branding.EnvVar(key), values[key])
	}
	return []byte(b.String())
}
