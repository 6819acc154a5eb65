package settings

import (
	"fmt"
	"os"
	"regexp"
)

// AppendRule appends Text to Target exactly when
// (Pattern found in Target) == ShouldMatch.
type AppendRule struct {
	Target      string
	Pattern     string
	Text        string
	ShouldMatch bool
}

// AppendIfMatches applies rule against the current content of its target.
// The match is re-evaluated on every call; no marker is recorded. The file is
// written back even when nothing was appended.
func AppendIfMatches(rule AppendRule) (bool, error) {
	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return false, fmt.Errorf("compiling pattern %q: %w", rule.Pattern, err)
	}

	info, err := os.Stat(rule.Target)
	if err != nil {
		return false, newError(KindIO, rule.Target, err)
	}
	contents, err := os.ReadFile(rule.Target)
	if err != nil {
		return false, newError(KindIO, rule.Target, err)
	}

	appended := false
	if re.Match(contents) == rule.ShouldMatch {
		contents = append(contents, rule.Text...)
		appended = true
	}

	if err := os.WriteFile(rule.Target, contents, info.Mode().Perm()); err != nil {
		return false, newError(KindIO, rule.Target, err)
	}
	return appended, nil
}
