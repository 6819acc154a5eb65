package composer

import (
	"path/filepath"
	"testing"
)

func TestReadInstalledComposer1(t *testing.T) {
	vendor := t.TempDir()
	writeFile(t, filepath.Join(vendor, "composer", "installed.json"), `[
  {"name": "drupal/core", "version": "10.2.3"},
  {"name": "acquia/drupal-recommended-settings", "version": "dev-main"}
]`)

	installed, err := ReadInstalled(vendor)
	if err != nil {
		t.Fatalf("ReadInstalled: %v", err)
	}
	if len(installed) != 2 {
		t.Fatalf("got %d packages, want 2", len(installed))
	}

	core := installed["drupal/core"]
	if core.InstallPath != filepath.Join(vendor, "drupal", "core") {
		t.Errorf("InstallPath = %q", core.InstallPath)
	}
	if core.Semver == nil || core.Semver.Major() != 10 {
		t.Errorf("Semver = %v, want major 10", core.Semver)
	}

	settings := installed["acquia/drupal-recommended-settings"]
	if settings.Semver != nil {
		t.Errorf("Semver = %v, want nil for dev version", settings.Semver)
	}
	if got := settings.DisplayVersion(); got != "dev-main" {
		t.Errorf("DisplayVersion() = %q, want %q", got, "dev-main")
	}
}

func TestReadInstalledComposer2(t *testing.T) {
	vendor := t.TempDir()
	writeFile(t, filepath.Join(vendor, "composer", "installed.json"), `{
  "packages": [
    {"name": "acme/settings", "version": "v2.1.0", "install-path": "../../packages/settings"}
  ]
}`)

	installed, err := ReadInstalled(vendor)
	if err != nil {
		t.Fatalf("ReadInstalled: %v", err)
	}
	pkg, ok := installed["acme/settings"]
	if !ok {
		t.Fatal("acme/settings missing from registry")
	}
	want := filepath.Join(filepath.Dir(vendor), "packages", "settings")
	if pkg.InstallPath != want {
		t.Errorf("InstallPath = %q, want %q", pkg.InstallPath, want)
	}
	if got := pkg.DisplayVersion(); got != "2.1.0" {
		t.Errorf("DisplayVersion() = %q, want %q", got, "2.1.0")
	}
}

func TestReadInstalledMissingFile(t *testing.T) {
	installed, err := ReadInstalled(t.TempDir())
	if err != nil {
		t.Fatalf("ReadInstalled: %v", err)
	}
	if len(installed) != 0 {
		t.Errorf("got %d packages, want 0", len(installed))
	}
}

func TestReadInstalledMalformed(t *testing.T) {
	vendor := t.TempDir()
	writeFile(t, filepath.Join(vendor, "composer", "installed.json"), `{"packages": 3}`)
	if _, err := ReadInstalled(vendor); err == nil {
		t.Error("expected error for malformed installed.json")
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"1.2.0", ">= 1.0", true},
		{"v1.2.0", "^1.2", true},
		{"0.9.0", ">= 1.0", false},
		{"dev-main", ">= 1.0", false},
	}

	for _, tt := range tests {
		p := &InstalledPackage{Version: tt.version, Semver: parseSemver(tt.version)}
		got, err := p.Satisfies(tt.constraint)
		if err != nil {
			t.Fatalf("Satisfies(%q) on %q: %v", tt.constraint, tt.version, err)
		}
		if got != tt.want {
			t.Errorf("Satisfies(%q) on %q = %v, want %v", tt.constraint, tt.version, got, tt.want)
		}
	}
}

func TestSatisfiesBadConstraint(t *testing.T) {
	p := &InstalledPackage{Version: "1.0.0", Semver: parseSemver("1.0.0")}
	if _, err := p.Satisfies("not a constraint !!"); err == nil {
		t.Error("expected error for invalid constraint")
	}
}
