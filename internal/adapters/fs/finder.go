package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileFinder = (*Finder)(nil)

// Finder expands lock-file globs against the files under a root.
type Finder struct {
	walker *Walker
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker) *Finder {
	return &Finder{walker: walker}
}

// FindLockFiles returns the sorted slash-separated paths, relative to root, matching any pattern.
// A leading **/ also matches files at the root itself.
func (f *Finder) FindLockFiles(root string, patterns []string) ([]string, error) {
	matchers, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(matchers) == 0 {
		return nil, nil
	}

	var found []string
	for path := range f.walker.WalkFiles(root) {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		for _, m := range matchers {
			if m.Match(rel) {
				found = append(found, rel)
				break
			}
		}
	}

	slices.Sort(found)
	return found, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimPrefix(filepath.ToSlash(p), "./")
		if p == "" {
			continue
		}

		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid lock-file pattern"), "pattern", p)
		}
		out = append(out, g)

		if rest, ok := strings.CutPrefix(p, "**/"); ok && rest != "" {
			rootLevel, err := glob.Compile(rest, '/')
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid lock-file pattern"), "pattern", p)
			}
			out = append(out, rootLevel)
		}
	}
	return out, nil
}
