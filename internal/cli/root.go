package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/drs-tools/drs/internal/branding"
	"github.com/drs-tools/drs/internal/composer"
	"github.com/drs-tools/drs/internal/config"
	"github.com/drs-tools/drs/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logger *slog.Logger
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyRoot, "", "Project root containing composer.json (default: current directory) [$"+branding.EnvVar(config.KeyRoot)+"]")
	flags.String(config.KeyPackage, branding.SettingsPackage(), "Composer package that ships the settings templates [$"+branding.EnvVar(config.KeyPackage)+"]")
	flags.String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error) [$"+branding.EnvVar(config.KeyLogLevel)+"]")
	flags.String(config.KeyLogFormat, "text", "Log format (text, json) [$"+branding.EnvVar(config.KeyLogFormat)+"]")

	for _, key := range []string{config.KeyRoot, config.KeyPackage, config.KeyLogLevel, config.KeyLogFormat} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies the recommended Drupal settings templates into a
Composer project, wires settings.php to include them and manages the hash salt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = setupLogger(config.Get(config.KeyLogLevel), config.Get(config.KeyLogFormat))
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func setupLogger(levelName, format string) *slog.Logger {
	var level slog.Level
	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// projectRoot returns the --root flag (or DRS_ROOT), falling back to the
// current directory.
func projectRoot() (string, error) {
	root := config.Get(config.KeyRoot)
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root %s: %w", root, err)
	}
	return abs, nil
}

// loadProject opens composer.json in the project root and resolves the
// scaffolding paths for the configured settings package.
func loadProject() (*composer.Project, *settings.Paths, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, nil, err
	}

	project, err := composer.Open(root)
	if err != nil {
		return nil, nil, err
	}

	paths, err := settings.ResolvePaths(root, project, config.Get(config.KeyPackage))
	if err != nil {
		return nil, nil, fmt.Errorf("resolving project paths: %w", err)
	}
	logger.Debug("resolved paths",
		"root", paths.Root,
		"webroot", paths.WebRoot,
		"package", paths.Package,
	)
	return project, paths, nil
}
