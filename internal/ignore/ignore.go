// Package ignore provides file/directory pattern matching for exclusion
//
// Two stores are available. Rules is the default: a flat, run-wide list of
// base-name rules. Repository delegates to github.com/denormal/go-gitignore
// for real .gitignore semantics. Disabled is used when rule files should
// not be consulted at all.
package ignore

// NewFromConfig builds the Store selected by cfg
func NewFromConfig(cfg Config) Store {
	if cfg.Disabled {
		return Disabled{}
	}

	var options []Option
	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	if cfg.Patterns != nil {
		options = append(options, WithPatternMatcher(cfg.Patterns))
	}

	if cfg.Strict {
		return NewRepository(options...)
	}
	return NewRules(options...)
}

// Disabled is a Store that loads nothing and ignores nothing
type Disabled struct{}

func (Disabled) LoadDir(string)              {}
func (Disabled) IsIgnored(string, bool) bool { return false }
