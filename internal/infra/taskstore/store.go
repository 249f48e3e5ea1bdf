// Package taskstore provides the file-backed implementation of TaskRepository.
// Tasks are partitioned across three JSON container files (active, backlog,
// completed) under a task root directory.
package taskstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// Repository implements domain.TaskRepository and domain.StoreInitializer
// over the three container files.
type Repository struct {
	clock domain.Clock
	root  string
}

// New creates a Repository rooted at the given task directory.
// The directory does not need to exist; Initialize creates it.
func New(root string, clock domain.Clock) *Repository {
	return &Repository{root: root, clock: clock}
}

// Root returns the task root directory.
func (r *Repository) Root() string {
	return r.root
}

// Initialize creates the task root and writes an empty container for each
// of the three paths that does not exist yet. Idempotent.
func (r *Repository) Initialize() error {
	if err := os.MkdirAll(r.root, 0o750); err != nil {
		return fmt.Errorf("create task root: %w", err)
	}

	for _, name := range domain.AllContainers() {
		path := name.Path(r.root)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := r.writeContainer(name, domain.NewContainer(r.clock.Now())); err != nil {
			return err
		}
	}
	return nil
}

// readContainer parses one container file. A missing, unreadable, or corrupt
// file surfaces as an error; it is never treated as empty.
func (r *Repository) readContainer(name domain.ContainerName) (*domain.Container, error) {
	path := name.Path(r.root)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read container %s: %w", name, err)
	}

	var c domain.Container
	if err := json.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrContainerCorrupt, name, err)
	}
	if c.Tasks == nil {
		c.Tasks = []domain.Task{}
	}
	return &c, nil
}

// writeContainer serializes the container to a temp file in the same
// directory, then atomically replaces the target path. Concurrent readers
// observe either the fully-old or fully-new content, never a partial write.
func (r *Repository) writeContainer(name domain.ContainerName, c *domain.Container) error {
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal container %s: %w", name, err)
	}
	content = append(content, '\n')

	path := name.Path(r.root)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// IsInitialized checks whether the active container exists.
func (r *Repository) IsInitialized() bool {
	_, err := os.Stat(domain.ContainerActive.Path(r.root))
	return err == nil
}

// Ensure Repository implements the store ports.
var (
	_ domain.TaskRepository   = (*Repository)(nil)
	_ domain.StoreInitializer = (*Repository)(nil)
)
