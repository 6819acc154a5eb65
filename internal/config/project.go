package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/drs-tools/drs/internal/branding"
	"github.com/spf13/viper"
)

// PackageDefaultsFile is the defaults file shipped by the settings package,
// relative to its install directory.
const PackageDefaultsFile = "settings/default.settings.yml"

// Config is the resolved project configuration.
type Config struct {
	v *viper.Viper

	// Sources lists the files that contributed values, lowest precedence first.
	Sources []string
}

// Initialize layers defaults, the package defaults file, the project config
// file and the environment. The project file is validated against the
// embedded schema; schema violations are returned as an error.
func Initialize(root, webRoot, packageDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("repo.root", root)
	v.SetDefault("docroot", webRoot)
	v.SetDefault("site", "default")
	v.SetDefault("settings.package.dir", packageDir)
	v.SetDefault("drupal.db.database", "drupal")
	v.SetDefault("drupal.db.username", "drupal")
	v.SetDefault("drupal.db.password", "drupal")
	v.SetDefault("drupal.db.host", "localhost")
	v.SetDefault("drupal.db.port", "3306")

	cfg := &Config{v: v}

	if packageDir != "" {
		if err := cfg.merge(filepath.Join(packageDir, filepath.FromSlash(PackageDefaultsFile)), false); err != nil {
			return nil, err
		}
	}
	if err := cfg.merge(filepath.Join(root, branding.ProjectConfig()), true); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) merge(path string, validate bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if validate {
		result, err := Validate(data)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}
		if !result.Valid {
			return &InvalidError{Path: path, Issues: result.Issues}
		}
	}

	if err := c.v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)
	return nil
}

// Get returns a single value by dotted key.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Export flattens the configuration into dotted keys. Keys are lower-cased.
// List values are joined with commas; nested maps are flattened.
func (c *Config) Export() map[string]string {
	out := make(map[string]string)
	for _, key := range c.v.AllKeys() {
		out[key] = stringify(c.v.Get(key))
	}
	return out
}

// Keys returns the exported keys in sorted order.
func (c *Config) Keys() []string {
	keys := c.v.AllKeys()
	sort.Strings(keys)
	return keys
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = stringify(p)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// InvalidError reports schema violations in a project config file.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msg := issue.Message
		if issue.Key != "" {
			msg = issue.Key + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return fmt.Sprintf("%s is invalid: %s", e.Path, strings.Join(msgs, "; "))
}
