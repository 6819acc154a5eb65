// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this directory before building. Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	EnvPrefix       string `yaml:"env_prefix"`
	SettingsPackage string `yaml:"settings_package"`
	ProjectConfig   string `yaml:"project_config"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "drs",
			DisplayName:     "Drupal Recommended Settings",
			Description:     "Scaffold recommended Drupal settings files into a Composer project",
			EnvPrefix:       "DRS",
			SettingsPackage: "acquia/drupal-recommended-settings",
			ProjectConfig:   "drs.yml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "drs").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "DRS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SettingsPackage returns the Composer package that ships the settings
// templates (e.g., "acquia/drupal-recommended-settings").
func SettingsPackage() string { load(); return defaults.SettingsPackage }

// ProjectConfig returns the file name of the per-project config overrides
// (e.g., "drs.yml").
func ProjectConfig() string { load(); return defaults.ProjectConfig }

// EnvVar returns the environment variable that overrides a setting key,
// e.g. EnvVar("drupal.db.host") is "DRS_DRUPAL_DB_HOST".
func EnvVar(key string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")
