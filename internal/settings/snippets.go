package settings

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"
)

// WarningBanner is appended to settings.php to steer people towards the
// recommended includes.
const WarningBanner = `/**
 * IMPORTANT.
 *
 * Do not include additional settings here. Instead, add them to settings
 * included by ` + "`" + RecommendedSettingsFile + "`" + `. See Acquia's documentation for more detail.
 *
 * @link https://docs.acquia.com/
 */`

const warningPattern = `Do not include additional settings here`

var requireTemplate = template.Must(template.New("require").Parse(
	`require DRUPAL_ROOT . "/{{ .FromWebRoot }}/{{ .SettingsDir }}/{{ .File }}";` + "\n",
))

// snippetData holds the template variables for the require line.
type snippetData struct {
	FromWebRoot string // package dir relative to DRUPAL_ROOT
	SettingsDir string
	File        string
}

// RequireRule returns the rule that adds the require statement for the
// recommended settings include when settings.php does not mention it yet.
func RequireRule(p *Paths) (AppendRule, error) {
	var buf bytes.Buffer
	data := snippetData{
		FromWebRoot: p.PackageFromWebRoot(),
		SettingsDir: SettingsDir,
		File:        RecommendedSettingsFile,
	}
	if err := requireTemplate.Execute(&buf, data); err != nil {
		return AppendRule{}, fmt.Errorf("rendering require line: %w", err)
	}

	return AppendRule{
		Target:  p.ProjectSettings(),
		Pattern: regexp.QuoteMeta(p.PackageFromRoot() + "/" + SettingsDir + "/" + RecommendedSettingsFile),
		Text:    buf.String(),
	}, nil
}

// WarningRule returns the rule that adds WarningBanner when absent.
func WarningRule(p *Paths) AppendRule {
	return AppendRule{
		Target:  p.ProjectSettings(),
		Pattern: warningPattern,
		Text:    WarningBanner + "\n",
	}
}
