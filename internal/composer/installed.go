package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// InstalledFile is the registry Composer writes below the vendor directory.
const InstalledFile = "composer/installed.json"

// InstalledPackage is one entry of vendor/composer/installed.json.
type InstalledPackage struct {
	Name        string
	Version     string
	InstallPath string // absolute

	// Semver is nil for versions that are not semantic (e.g. "dev-main").
	Semver *semver.Version
}

type installedEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	InstallPath string `json:"install-path"`
}

type installedV2 struct {
	Packages []installedEntry `json:"packages"`
}

// ReadInstalled parses <vendorDir>/composer/installed.json. Both the Composer 1
// format (a bare list) and the Composer 2 format ({"packages": [...]}) are
// accepted. A missing file yields an empty registry.
func ReadInstalled(vendorDir string) (map[string]*InstalledPackage, error) {
	path := filepath.Join(vendorDir, filepath.FromSlash(InstalledFile))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*InstalledPackage{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	entries, err := decodeInstalled(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// install-path is relative to the directory holding installed.json.
	base := filepath.Dir(path)
	result := make(map[string]*InstalledPackage, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		installPath := filepath.Join(vendorDir, filepath.FromSlash(e.Name))
		if e.InstallPath != "" {
			installPath = filepath.Join(base, filepath.FromSlash(e.InstallPath))
		}
		result[e.Name] = &InstalledPackage{
			Name:        e.Name,
			Version:     e.Version,
			InstallPath: installPath,
			Semver:      parseSemver(e.Version),
		}
	}
	return result, nil
}

func decodeInstalled(data []byte) ([]installedEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var entries []installedEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	var v2 installedV2
	if err := json.Unmarshal(trimmed, &v2); err != nil {
		return nil, err
	}
	return v2.Packages, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) *semver.Version {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil
	}
	return v
}

// DisplayVersion returns the normalized semantic version when available,
// falling back to the raw version string.
func (p *InstalledPackage) DisplayVersion() string {
	if p.Semver != nil {
		return p.Semver.String()
	}
	if p.Version == "" {
		return "unknown"
	}
	return p.Version
}

// Satisfies reports whether the package version meets a semver constraint
// such as ">= 1.0". Non-semantic versions never satisfy a constraint.
func (p *InstalledPackage) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	if p.Semver == nil {
		return false, nil
	}
	return c.Check(p.Semver), nil
}
