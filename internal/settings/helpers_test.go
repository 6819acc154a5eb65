package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	localTemplate    = "<?php\n$databases['default']['default']['database'] = '${drupal.db.database}';\n"
	includesTemplate = "<?php\n$additionalSettingsFiles = [];\n"
	globalTemplate   = "<?php\n// Global settings.\n"
	defaultSettings  = "<?php\n$settings['hash_salt'] = '';\n"
)

// fakeLookup answers composer lookups from fixed values.
type fakeLookup struct {
	vendor  string
	webRoot string
	pkgs    map[string]string
}

func (f fakeLookup) VendorDir() string { return f.vendor }
func (f fakeLookup) WebRoot() string   { return f.webRoot }
func (f fakeLookup) InstallPath(name string) (string, error) {
	if p, ok := f.pkgs[name]; ok {
		return p, nil
	}
	return "", os.ErrNotExist
}

// mapExpander expands ${key} tokens with a plain string replace.
type mapExpander map[string]string

func (m mapExpander) ExpandFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out := string(data)
	for k, v := range m {
		out = strings.ReplaceAll(out, "${"+k+"}", v)
	}
	return os.WriteFile(path, []byte(out), 0644)
}

const testPackage = "acquia/drupal-recommended-settings"

// testProject is a synthetic Composer project with the settings package
// installed under vendor/ and a docroot/ web root.
type testProject struct {
	Root      string
	Package   string
	Multisite string
	Lookup    fakeLookup
}

func setupProject(t *testing.T) *testProject {
	t.Helper()

	root := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	pkg := filepath.Join(root, "vendor", "acquia", "drupal-recommended-settings")
	multisite := filepath.Join(root, "docroot", "sites", "default")

	writeFile(t, filepath.Join(pkg, "settings", LocalSettingsTemplate), localTemplate)
	writeFile(t, filepath.Join(pkg, "settings", IncludesSettingsTemplate), includesTemplate)
	writeFile(t, filepath.Join(pkg, "settings", GlobalSettingsTemplate), globalTemplate)
	writeFile(t, filepath.Join(pkg, "settings", RecommendedSettingsFile), "<?php\n")
	if err := os.MkdirAll(multisite, 0755); err != nil {
		t.Fatal(err)
	}

	return &testProject{
		Root:      root,
		Package:   pkg,
		Multisite: multisite,
		Lookup: fakeLookup{
			vendor:  filepath.Join(root, "vendor"),
			webRoot: "docroot",
			pkgs:    map[string]string{testPackage: pkg},
		},
	}
}

func (tp *testProject) paths(t *testing.T) *Paths {
	t.Helper()
	p, err := ResolvePaths(tp.Root, tp.Lookup, testPackage)
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
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
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}
