package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/drs-tools/drs/internal/platform"
)

// CheckReport counts the outcome of Check.
type CheckReport struct {
	OK       int
	Problems int
	Fixed    int
}

// Check validates a scaffolded project and prints one line per check to w.
// When fix is true, permission problems on the multisite directory are
// repaired. Missing files are reported but never created here; run
// Generate for that.
func Check(w io.Writer, p *Paths, fix bool) (*CheckReport, error) {
	report := &CheckReport{}

	fmt.Fprintln(w, "Settings check:")
	checkDirWithPerm(w, report, p.Multisite, MultisitePerm, fix)

	projectSettingsDir := filepath.Join(p.Multisite, SettingsDir)
	for _, path := range []string{
		p.ProjectSettings(),
		filepath.Join(projectSettingsDir, LocalSettingsFile),
		filepath.Join(projectSettingsDir, IncludesSettingsTemplate),
		filepath.Join(p.Root, HashSaltFile),
	} {
		checkFileExists(w, report, path)
	}

	requireRule, err := RequireRule(p)
	if err != nil {
		return report, err
	}
	for _, rule := range []AppendRule{requireRule, WarningRule(p)} {
		if err := checkContains(w, report, rule); err != nil {
			return report, err
		}
	}

	return report, nil
}

func checkDirWithPerm(w io.Writer, r *CheckReport, path string, expectedPerm os.FileMode, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		r.Problems++
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		r.Problems++
		return
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != expectedPerm {
		fmt.Fprintf(w, "  [WARN] %s has permissions %o (expected %o)\n", path, actualPerm, expectedPerm)
		r.Problems++
		if fix {
			if chErr := platform.ChmodRecursive(path, expectedPerm); chErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, chErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to %o\n", path, expectedPerm)
			r.Fixed++
		}
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s (permissions %o)\n", path, actualPerm)
	r.OK++
}

func checkFileExists(w io.Writer, r *CheckReport, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		r.Problems++
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	r.OK++
}

// checkContains reports whether rule's pattern is already present. Unlike
// AppendIfMatches it never writes.
func checkContains(w io.Writer, r *CheckReport, rule AppendRule) error {
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", rule.Pattern, err)
	}
	data, err := os.ReadFile(rule.Target)
	if os.IsNotExist(err) {
		// Already reported as missing.
		return nil
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", rule.Target, err)
		r.Problems++
		return nil
	}
	if re.Match(data) {
		fmt.Fprintf(w, "  [ OK ] %s contains %s\n", rule.Target, rule.Pattern)
		r.OK++
		return nil
	}
	fmt.Fprintf(w, "  [MISS] %s does not contain %s\n", rule.Target, rule.Pattern)
	r.Problems++
	return nil
}
