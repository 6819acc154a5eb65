//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const settingsPackage = "acquia/drupal-recommended-settings"

// testEnv holds the paths of a sandboxed Composer project.
type testEnv struct {
	Root      string // project root (composer.json lives here)
	Package   string // settings package install dir
	Multisite string // <webroot>/sites/default
}

// setupTestEnv creates a Drupal project with a docroot/ web root, the
// settings package installed through a Composer 2 installed.json and an
// untouched default.settings.php.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("COMPOSER_VENDOR_DIR", "")

	root := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &testEnv{
		Root:      root,
		Package:   filepath.Join(root, "vendor", "acquia", "drupal-recommended-settings"),
		Multisite: filepath.Join(root, "docroot", "sites", "default"),
	}

	writeFile(t, filepath.Join(root, "composer.json"), `{
  "name": "acme/site",
  "require": {"acquia/drupal-recommended-settings": "^1.0"},
  "extra": {
    "drupal-scaffold": {
      "locations": {"web-root": "docroot/"},
      "file-mapping": {"[web-root]/sites/default/default.settings.php": false}
    }
  }
}`)
	writeFile(t, filepath.Join(root, "vendor", "composer", "installed.json"), `{
  "packages": [
    {"name": "drupal/core", "version": "10.2.3", "install-path": "../../docroot/core"},
    {"name": "acquia/drupal-recommended-settings", "version": "1.1.0", "install-path": "../acquia/drupal-recommended-settings"}
  ],
  "dev": true
}`)

	writeFile(t, filepath.Join(env.Package, "settings", "default.local.settings.php"), `<?php

$databases['default']['default'] = [
  'database' => '${drupal.db.database}',
  'username' => '${drupal.db.username}',
  'password' => '${drupal.db.password}',
  'host' => '${drupal.db.host}',
  'port' => '${drupal.db.port}',
];
$settings['file_private_path'] = "${repo.root}/files-private";
`)
	writeFile(t, filepath.Join(env.Package, "settings", "default.includes.settings.php"), "<?php\n\n$additionalSettingsFiles = [];\n")
	writeFile(t, filepath.Join(env.Package, "settings", "default.global.settings.php"), "<?php\n\n// Global settings for every site.\n")
	writeFile(t, filepath.Join(env.Package, "settings", "acquia-recommended.settings.php"), "<?php\n")
	writeFile(t, filepath.Join(env.Package, "settings", "default.settings.yml"), "drupal:\n  db:\n    host: 127.0.0.1\n")
	writeFile(t, filepath.Join(env.Multisite, "default.settings.php"), "<?php\n\n$settings['hash_salt'] = '';\n")

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	if content := readFile(t, path); !strings.Contains(content, substr) {
		t.Errorf("file %s does not contain %q:\n%s", path, substr, content)
	}
}
