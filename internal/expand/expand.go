package expand

import (
	"fmt"
	"os"
	"regexp"
)

var tokenPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_.\-]+)\}`)

// Expander replaces known placeholder tokens. Unknown tokens are left as-is
// so PHP code that happens to use ${...} survives untouched.
type Expander struct {
	values map[string]string
}

// New returns an Expander over a flat map of dotted keys.
func New(values map[string]string) *Expander {
	v := make(map[string]string, len(values))
	for k, val := range values {
		v[k] = val
	}
	return &Expander{values: v}
}

// Expand returns s with every known ${key} replaced. Values that reference
// other keys are expanded one more level; deeper chains are left as written.
func (e *Expander) Expand(s string) string {
	return e.expand(s, 1)
}

func (e *Expander) expand(s string, depth int) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		key := token[2 : len(token)-1]
		val, ok := e.values[key]
		if !ok {
			return token
		}
		if depth > 0 {
			return e.expand(val, depth-1)
		}
		return val
	})
}

// ExpandFile rewrites path in place. The file is only written when expansion
// changed its content; the existing mode is kept.
func (e *Expander) ExpandFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := e.Expand(string(data))
	if out == string(data) {
		return nil
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
