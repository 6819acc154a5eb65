package settings

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/drs-tools/drs/internal/platform"
)

// MultisitePerm is applied recursively to the multisite directory.
const MultisitePerm = 0755

// Result is the trace of a Generate run.
type Result struct {
	Copied      []string
	Skipped     []string
	Appended    []string
	Diagnostics []string
}

// Scaffolder generates the settings files of one project.
type Scaffolder struct {
	Paths    *Paths
	Expander FileExpander
	Logger   *slog.Logger
}

// NewScaffolder returns a Scaffolder. A nil logger discards output.
func NewScaffolder(p *Paths, exp FileExpander, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{Paths: p, Expander: exp, Logger: logger}
}

// Generate sets permissions on the multisite directory, copies every missing
// file of the copy map and appends the require line and warning banner to
// settings.php when they are absent.
func (s *Scaffolder) Generate() (*Result, error) {
	result := &Result{}

	if err := platform.ChmodRecursive(s.Paths.Multisite, MultisitePerm); err != nil {
		s.diagnose(result, fmt.Sprintf("Could not set permissions on %s: %v", s.Paths.Multisite, err))
	}

	copyMap, diagnostics := BuildCopyMap(s.Paths)
	for _, d := range diagnostics {
		s.diagnose(result, d)
	}

	copied, skipped, err := ApplyCopyMap(copyMap, s.Expander)
	result.Copied = copied
	result.Skipped = skipped
	for _, c := range copied {
		s.Logger.Debug("copied", "path", c)
	}
	for _, sk := range skipped {
		s.Logger.Debug("skipped existing file", "path", sk)
	}
	if err != nil {
		return result, err
	}

	requireRule, err := RequireRule(s.Paths)
	if err != nil {
		return result, err
	}
	for _, rule := range []AppendRule{requireRule, WarningRule(s.Paths)} {
		appended, err := AppendIfMatches(rule)
		if err != nil {
			return result, err
		}
		if appended {
			result.Appended = append(result.Appended, rule.Pattern)
			s.Logger.Debug("appended to settings", "path", rule.Target, "pattern", rule.Pattern)
		}
	}

	return result, nil
}

func (s *Scaffolder) diagnose(r *Result, msg string) {
	r.Diagnostics = append(r.Diagnostics, msg)
	s.Logger.Info(msg)
}
