package config

import (
	"strings"

	"github.com/drs-tools/drs/internal/branding"
	"github.com/spf13/viper"
)

// Keys for CLI-level settings. Each is also readable from the environment,
// e.g. DRS_LOG_LEVEL.
const (
	KeyRoot      = "root"
	KeyPackage   = "package"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Load initializes the global viper instance to read CLI settings from the
// environment.
func Load() {
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault(KeyPackage, branding.SettingsPackage())
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")
}

// Get returns a CLI setting by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}
