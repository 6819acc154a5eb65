package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// CopyEntry copies Source to Destination when Destination is absent.
type CopyEntry struct {
	Source      string
	Destination string
}

// CopyMap is an ordered list of copies. Destinations are disjoint.
type CopyMap []CopyEntry

// FileExpander expands placeholders in a file in place.
type FileExpander interface {
	ExpandFile(path string) error
}

// BuildCopyMap returns the copies needed to scaffold the project, plus
// diagnostics for optional steps that were left out. It only probes the
// filesystem; nothing is written.
func BuildCopyMap(p *Paths) (CopyMap, []string) {
	projectSettingsDir := filepath.Join(p.Multisite, SettingsDir)
	defaultLocal := filepath.Join(projectSettingsDir, LocalSettingsTemplate)

	m := CopyMap{
		{Source: p.PackageTemplate(LocalSettingsTemplate), Destination: defaultLocal},
		{Source: defaultLocal, Destination: filepath.Join(projectSettingsDir, LocalSettingsFile)},
		{Source: p.PackageTemplate(IncludesSettingsTemplate), Destination: filepath.Join(projectSettingsDir, IncludesSettingsTemplate)},
	}

	var diagnostics []string

	// A user-provided global.settings.php is never replaced.
	globalOverride := filepath.Join(p.Global, GlobalSettingsFile)
	if exists(globalOverride) {
		diagnostics = append(diagnostics, fmt.Sprintf("Found %s; keeping it.", globalOverride))
	} else {
		m = append(m, CopyEntry{
			Source:      p.PackageTemplate(GlobalSettingsTemplate),
			Destination: filepath.Join(p.Global, GlobalSettingsTemplate),
		})
	}

	projectDefault := filepath.Join(p.Multisite, DefaultSettingsFile)
	if exists(projectDefault) {
		m = append(m, CopyEntry{Source: projectDefault, Destination: p.ProjectSettings()})
	} else {
		diagnostics = append(diagnostics, fmt.Sprintf("No %s file found.", projectDefault))
	}

	return m, diagnostics
}

// ApplyCopyMap performs the copies in order. Entries whose destination exists
// are skipped. Each copied file is handed to exp (if non-nil). The first
// failure aborts the remaining entries; files already copied stay in place.
// A destination that was written but could not be expanded is removed, so a
// later run copies it again instead of skipping an unexpanded template.
func ApplyCopyMap(m CopyMap, exp FileExpander) (copied, skipped []string, err error) {
	for _, entry := range m {
		if exists(entry.Destination) {
			skipped = append(skipped, entry.Destination)
			continue
		}

		if err := copyFile(entry.Source, entry.Destination); err != nil {
			return copied, skipped, err
		}
		if exp != nil {
			if err := exp.ExpandFile(entry.Destination); err != nil {
				_ = os.Remove(entry.Destination)
				return copied, skipped, newError(KindCopy, entry.Destination, err)
			}
		}
		copied = append(copied, entry.Destination)
	}
	return copied, skipped, nil
}

// copyFile copies a single file from src to dst, preserving permissions and
// creating dst's parent directories.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return newError(KindCopy, src, err)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return newError(KindCopy, src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return newError(KindCopy, dst, err)
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return newError(KindCopy, dst, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
