package composer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// File names and defaults used by Composer.
const (
	ManifestFile     = "composer.json"
	DefaultVendorDir = "vendor"
	DefaultWebRoot   = "."

	// VendorDirEnv makes Composer install dependencies into a directory
	// other than vendor/. https://getcomposer.org/doc/03-cli.md#composer-vendor-dir
	VendorDirEnv = "COMPOSER_VENDOR_DIR"

	vendorDirKey = "config.vendor-dir"
	webRootKey   = "extra.drupal-scaffold.locations.web-root"
)

// Lookup answers the questions the scaffolder asks of the host dependency
// manager.
type Lookup interface {
	// VendorDir returns the vendor directory, absolute or relative to the
	// project root.
	VendorDir() string
	// WebRoot returns the configured web root relative to the project root.
	WebRoot() string
	// InstallPath returns the directory a package is installed in.
	InstallPath(name string) (string, error)
}

// Project is a Composer project rooted at a directory.
type Project struct {
	Root string

	v         *viper.Viper
	installed map[string]*InstalledPackage
}

// Open reads <root>/composer.json. A missing manifest is not an error:
// Composer defaults apply.
func Open(root string) (*Project, error) {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(vendorDirKey, DefaultVendorDir)
	v.SetDefault(webRootKey, DefaultWebRoot)
	if err := v.BindEnv(vendorDirKey, VendorDirEnv); err != nil {
		return nil, fmt.Errorf("binding %s: %w", VendorDirEnv, err)
	}

	path := filepath.Join(root, ManifestFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &Project{Root: root, v: v}, nil
}

// VendorDir returns the absolute vendor directory.
func (p *Project) VendorDir() string {
	dir := p.v.GetString(vendorDirKey)
	if dir == "" {
		dir = DefaultVendorDir
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(p.Root, dir)
}

// WebRoot returns extra.drupal-scaffold.locations.web-root, or "." when unset.
func (p *Project) WebRoot() string {
	if w := p.v.GetString(webRootKey); w != "" {
		return w
	}
	return DefaultWebRoot
}

// Name returns the root package name from composer.json, if any.
func (p *Project) Name() string {
	return p.v.GetString("name")
}

// InstallPath returns the install directory of a package. The installed
// registry is consulted first; a <vendor>/<name> directory is accepted when
// the registry has no entry for it.
func (p *Project) InstallPath(name string) (string, error) {
	pkg, err := p.Package(name)
	if err != nil {
		return "", err
	}
	return pkg.InstallPath, nil
}

// Package returns the installed package with the given name.
func (p *Project) Package(name string) (*InstalledPackage, error) {
	if p.installed == nil {
		installed, err := ReadInstalled(p.VendorDir())
		if err != nil {
			return nil, err
		}
		p.installed = installed
	}

	if pkg, ok := p.installed[name]; ok {
		return pkg, nil
	}

	fallback := filepath.Join(p.VendorDir(), filepath.FromSlash(name))
	if info, err := os.Stat(fallback); err == nil && info.IsDir() {
		return &InstalledPackage{Name: name, InstallPath: fallback}, nil
	}
	return nil, fmt.Errorf("package %s is not installed in %s", name, p.VendorDir())
}
