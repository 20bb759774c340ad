package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// Repository is the strict rule store. Each directory handed to LoadDir that
// is not already covered becomes the base of a go-gitignore repository,
// which reads nested rule files itself and scopes every rule to the
// directory that declares it. Negation and anchoring are honoured.
type Repository struct {
	settings
	repos []gitignore.GitIgnore
}

// NewRepository creates an empty strict store
func NewRepository(opts ...Option) *Repository {
	return &Repository{settings: apply(opts)}
}

// LoadDir registers dir as a repository base unless an existing base
// already contains it
func (r *Repository) LoadDir(dir string) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		r.logger.Debug("ignore.Repository: cannot resolve %q: %v", dir, err)
		return
	}
	if r.covering(abs) != nil {
		return
	}

	repo, err := gitignore.NewRepository(abs)
	if err != nil {
		if repo == nil {
			r.logger.Debug("ignore.Repository: no rules loaded for %q: %v", abs, err)
			return
		}
		r.logger.Warn("ignore.Repository: partial rules for %q: %v", abs, err)
	}
	r.logger.Debug("ignore.Repository: registered base %s", abs)
	r.repos = append(r.repos, repo)
}

// IsIgnored asks the repository covering path. Only the outermost match is
// consulted, so a negated rule re-includes the path.
func (r *Repository) IsIgnored(path string, isDir bool) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	repo := r.covering(abs)
	if repo == nil || abs == repo.Base() {
		return false
	}

	ignored := false
	func() {
		// the library panics on some malformed rule files
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("ignore.Repository: gitignore engine failed on %q: %v", path, rec)
				ignored = false
			}
		}()
		if m := repo.Absolute(abs, isDir); m != nil {
			ignored = m.Ignore()
		}
	}()

	if ignored {
		r.logger.Debug("ignore.Repository: %q ignored by %s", path, repo.Base())
	}
	return ignored
}

func (r *Repository) covering(abs string) gitignore.GitIgnore {
	for _, repo := range r.repos {
		if within(repo.Base(), abs) {
			return repo
		}
	}
	return nil
}

func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
