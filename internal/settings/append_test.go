package settings

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestAppendIfMatchesOncePerAbsence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.php")
	writeFile(t, path, defaultSettings)

	rule := AppendRule{
		Target:  path,
		Pattern: `vendor/acme/settings/settings/recommended\.php`,
		Text:    "require DRUPAL_ROOT . \"/../vendor/acme/settings/settings/recommended.php\";\n",
	}

	appended, err := AppendIfMatches(rule)
	if err != nil {
		t.Fatalf("AppendIfMatches: %v", err)
	}
	if !appended {
		t.Error("expected first call to append")
	}

	appended, err = AppendIfMatches(rule)
	if err != nil {
		t.Fatalf("AppendIfMatches: %v", err)
	}
	if appended {
		t.Error("expected second call to leave the file alone")
	}

	content := readFile(t, path)
	re := regexp.MustCompile(rule.Pattern)
	if n := len(re.FindAllString(content, -1)); n != 1 {
		t.Errorf("pattern found %d times, want 1:\n%s", n, content)
	}
	if !strings.HasPrefix(content, defaultSettings) {
		t.Errorf("original content not preserved:\n%s", content)
	}
}

func TestAppendIfMatchesShouldMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.php")
	writeFile(t, path, "<?php\n// marker\n")

	appended, err := AppendIfMatches(AppendRule{Target: path, Pattern: "marker", Text: "// after\n", ShouldMatch: true})
	if err != nil {
		t.Fatalf("AppendIfMatches: %v", err)
	}
	if !appended {
		t.Error("expected append when pattern is present and ShouldMatch is true")
	}

	appended, err = AppendIfMatches(AppendRule{Target: path, Pattern: "absent", Text: "// never\n", ShouldMatch: true})
	if err != nil {
		t.Fatalf("AppendIfMatches: %v", err)
	}
	if appended {
		t.Error("expected no append when pattern is absent and ShouldMatch is true")
	}

	if got, want := readFile(t, path), "<?php\n// marker\n// after\n"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAppendIfMatchesCommentedLineCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.php")
	writeFile(t, path, "<?php\n// require 'recommended.php';\n")

	appended, err := AppendIfMatches(AppendRule{Target: path, Pattern: `recommended\.php`, Text: "require 'recommended.php';\n"})
	if err != nil {
		t.Fatalf("AppendIfMatches: %v", err)
	}
	if appended {
		t.Error("a commented-out line still matches the detection pattern")
	}
}

func TestAppendIfMatchesMissingFile(t *testing.T) {
	_, err := AppendIfMatches(AppendRule{Target: filepath.Join(t.TempDir(), "settings.php"), Pattern: "x"})
	if !IsKind(err, KindIO) {
		t.Errorf("KindOf(err) = %s, want %s", KindOf(err), KindIO)
	}
}

func TestAppendIfMatchesBadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.php")
	writeFile(t, path, "<?php\n")
	if _, err := AppendIfMatches(AppendRule{Target: path, Pattern: "("}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestRequireRule(t *testing.T) {
	tp := setupProject(t)
	rule, err := RequireRule(tp.paths(t))
	if err != nil {
		t.Fatalf("RequireRule: %v", err)
	}

	want := `require DRUPAL_ROOT . "/../vendor/acquia/drupal-recommended-settings/settings/acquia-recommended.settings.php";` + "\n"
	if rule.Text != want {
		t.Errorf("Text = %q, want %q", rule.Text, want)
	}
	if rule.Target != filepath.Join(tp.Multisite, SettingsFile) {
		t.Errorf("Target = %q", rule.Target)
	}
	if !regexp.MustCompile(rule.Pattern).MatchString(rule.Text) {
		t.Errorf("pattern %q does not match its own text", rule.Pattern)
	}
	if rule.ShouldMatch {
		t.Error("ShouldMatch should be false")
	}
}

func TestWarningRule(t *testing.T) {
	tp := setupProject(t)
	rule := WarningRule(tp.paths(t))
	if !regexp.MustCompile(rule.Pattern).MatchString(rule.Text) {
		t.Errorf("pattern %q does not match the banner", rule.Pattern)
	}
	if !strings.HasSuffix(rule.Text, " */\n") {
		t.Errorf("banner should end with a newline: %q", rule.Text)
	}
}
