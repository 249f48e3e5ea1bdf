// Package workspace resolves where task data lives for the current run.
//
// Resolution order: an explicit config override, then a project-local
// .pai/tasks inside the enclosing git repository (only when it already
// holds containers), then the global ~/.pai/tasks fallback.
package workspace

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// Resolver locates the task root and project data directory.
type Resolver struct {
	cwd  string
	home string
}

// NewResolver creates a Resolver for the given working directory.
func NewResolver(cwd string) (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &Resolver{cwd: cwd, home: home}, nil
}

// NewResolverWithHome creates a Resolver with an explicit home directory.
// This is useful for testing.
func NewResolverWithHome(cwd, home string) *Resolver {
	return &Resolver{cwd: cwd, home: home}
}

// ProjectDir returns the project-local .pai directory when the working
// directory sits inside a git repository, or "" otherwise.
func (r *Resolver) ProjectDir() string {
	root, ok := r.projectRoot()
	if !ok {
		return ""
	}
	return domain.ProjectPaiDir(root)
}

// TaskRoot resolves the directory holding the three container files.
// An override from config wins; otherwise a project-local task root is
// preferred when it already contains an active container, falling back
// to the global root under the user's home.
func (r *Resolver) TaskRoot(cfg *domain.Config) string {
	if cfg != nil && cfg.Tasks.Root != "" {
		return cfg.Tasks.Root
	}

	if root, ok := r.projectRoot(); ok {
		projectTasks := domain.ProjectTaskRoot(root)
		if _, err := os.Stat(domain.ContainerActive.Path(projectTasks)); err == nil {
			return projectTasks
		}
	}

	return domain.GlobalTaskRoot(r.home)
}

// GlobalDir returns the global .pai directory (log destination).
func (r *Resolver) GlobalDir() string {
	return domain.GlobalPaiDir(r.home)
}

// projectRoot finds the root of the enclosing git repository, walking up
// from the working directory the way git itself does.
func (r *Resolver) projectRoot() (string, bool) {
	repo, err := git.PlainOpenWithOptions(r.cwd, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}
