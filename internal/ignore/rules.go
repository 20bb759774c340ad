package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Rules is the simplified rule store. Every non-blank, non-comment line of
// every rule file seen is appended to one list that lives for the whole run:
// rules picked up in one subtree keep applying after the walk has left it.
//
// A rule ending in "/" matches a base name exactly (after dropping the
// slash); any other rule is a glob matched against the base name only.
// Negation, anchoring and "**" are not interpreted.
type Rules struct {
	settings
	rules  []string
	loaded map[string]struct{}
}

// NewRules creates an empty rule store
func NewRules(opts ...Option) *Rules {
	return &Rules{
		settings: apply(opts),
		loaded:   make(map[string]struct{}),
	}
}

// LoadDir appends the rules of dir/.gitignore. Each directory is read at most once.
func (r *Rules) LoadDir(dir string) {
	key := dir
	if abs, err := filepath.Abs(dir); err == nil {
		key = abs
	}
	if _, seen := r.loaded[key]; seen {
		return
	}
	r.loaded[key] = struct{}{}

	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	added := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.rules = append(r.rules, line)
		added++
	}
	if err := scanner.Err(); err != nil {
		r.logger.Debug("ignore.LoadDir: stopped reading %s: %v", path, err)
	}
	r.logger.Debug("ignore.LoadDir: %d rules from %s (total %d)", added, path, len(r.rules))
}

// Add appends rules directly, as if read from a rule file
func (r *Rules) Add(rules ...string) {
	r.rules = append(r.rules, rules...)
}

// Rules returns the accumulated rules in insertion order
func (r *Rules) Rules() []string {
	out := make([]string, len(r.rules))
	copy(out, r.rules)
	return out
}

// IsIgnored checks the base name of path against every rule. isDir is not
// consulted: a trailing-slash rule also matches a file of that name.
func (r *Rules) IsIgnored(path string, isDir bool) bool {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return false
	}

	for _, rule := range r.rules {
		if strings.HasSuffix(rule, "/") {
			if name == strings.TrimSuffix(rule, "/") {
				r.logger.Debug("ignore.IsIgnored: %q matched directory rule %q", path, rule)
				return true
			}
			continue
		}
		if r.patterns.Match(rule, name) {
			r.logger.Debug("ignore.IsIgnored: %q matched rule %q", path, rule)
			return true
		}
	}
	return false
}
