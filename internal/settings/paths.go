package settings

import (
	"fmt"
	"path/filepath"

	"github.com/drs-tools/drs/internal/composer"
)

// File names used in the settings package and in the project.
const (
	LocalSettingsTemplate    = "default.local.settings.php"
	LocalSettingsFile        = "local.settings.php"
	IncludesSettingsTemplate = "default.includes.settings.php"
	GlobalSettingsTemplate   = "default.global.settings.php"
	GlobalSettingsFile       = "global.settings.php"
	DefaultSettingsFile      = "default.settings.php"
	SettingsFile             = "settings.php"
	RecommendedSettingsFile  = "acquia-recommended.settings.php"
	HashSaltFile             = "salt.txt"

	// Directory names relative to their parents.
	SettingsDir       = "settings"
	MultisiteDir      = "sites/default"
	GlobalSettingsDir = "sites/settings"
)

// Paths are the absolute locations the scaffolder works with.
type Paths struct {
	Root      string // project root
	Vendor    string // Composer vendor directory
	WebRoot   string // Drupal root (DRUPAL_ROOT)
	Multisite string // <webroot>/sites/default
	Package   string // install directory of the settings package
	Global    string // <package>/sites/settings
}

// ResolvePaths resolves the project layout. The vendor directory and web
// root must exist; symlinks in them are resolved. The settings package is
// located through lookup.
func ResolvePaths(root string, lookup composer.Lookup, packageName string) (*Paths, error) {
	realRoot, err := realPath(root)
	if err != nil {
		return nil, newError(KindPathResolution, root, err)
	}

	vendor := lookup.VendorDir()
	if !filepath.IsAbs(vendor) {
		vendor = filepath.Join(realRoot, vendor)
	}
	realVendor, err := realPath(vendor)
	if err != nil {
		return nil, newError(KindPathResolution, vendor, err)
	}

	webRoot := filepath.Join(realRoot, lookup.WebRoot())
	realWebRoot, err := realPath(webRoot)
	if err != nil {
		return nil, newError(KindPathResolution, webRoot, err)
	}

	pkg, err := lookup.InstallPath(packageName)
	if err != nil {
		return nil, newError(KindPathResolution, packageName, err)
	}
	if !filepath.IsAbs(pkg) {
		pkg = filepath.Join(realRoot, pkg)
	}
	// The package may be a path repository symlink; resolve it when possible
	// so relative paths computed from it stay stable.
	if resolved, err := filepath.EvalSymlinks(pkg); err == nil {
		pkg = resolved
	}
	pkg = filepath.Clean(pkg)

	return &Paths{
		Root:      realRoot,
		Vendor:    realVendor,
		WebRoot:   realWebRoot,
		Multisite: filepath.Join(realWebRoot, filepath.FromSlash(MultisiteDir)),
		Package:   pkg,
		Global:    filepath.Join(pkg, filepath.FromSlash(GlobalSettingsDir)),
	}, nil
}

// ProjectSettings returns <multisite>/settings.php.
func (p *Paths) ProjectSettings() string {
	return filepath.Join(p.Multisite, SettingsFile)
}

// PackageTemplate returns the path of a template shipped in <package>/settings.
func (p *Paths) PackageTemplate(name string) string {
	return filepath.Join(p.Package, SettingsDir, name)
}

// PackageFromRoot returns the package directory relative to the project root,
// slash-separated (e.g. "vendor/acquia/drupal-recommended-settings").
func (p *Paths) PackageFromRoot() string {
	return relSlash(p.Root, p.Package)
}

// PackageFromWebRoot returns the package directory relative to the web root,
// slash-separated (e.g. "../vendor/acquia/drupal-recommended-settings").
func (p *Paths) PackageFromWebRoot() string {
	return relSlash(p.WebRoot, p.Package)
}

func relSlash(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.Clean(resolved), nil
}
