package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the task data store.
type StoreInitializer interface {
	// Initialize creates the task root and any missing container files.
	// Idempotent: existing containers are left untouched.
	Initialize() error
}

// TaskRepository manages task persistence across the three containers.
type TaskRepository interface {
	// NextID returns the next globally unique task ID
	// (1 + max id across all containers, 1 when empty).
	NextID() (int, error)

	// Find retrieves a task by ID, scanning active, backlog, completed in
	// that order. Returns ErrTaskNotFound if no container holds the ID.
	Find(id int) (*Task, ContainerName, error)

	// Add appends a task to the target container, assigning ID and
	// timestamps when absent. Returns the normalized task as persisted.
	Add(task *Task, target ContainerName) (*Task, error)

	// Update merges changes into the task, restamps it, and relocates it
	// when the resulting status routes to a different container.
	// Returns the task plus its source and target containers.
	Update(id int, changes TaskChanges) (*Task, ContainerName, ContainerName, error)

	// List returns tasks matching the filter in container order.
	List(filter TaskFilter) ([]Task, error)
}

// Clock provides the current time. Allows mocking in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current UTC time.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Logger writes leveled log messages scoped to a task or hook.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Notifier delivers a short spoken notification to the voice server.
type Notifier interface {
	// Notify sends the message. Delivery failures are returned, not fatal;
	// callers decide whether to surface them.
	Notify(ctx context.Context, message string) error
}

// TagClassifier derives tags from a task title during ingestion.
// It is an injectable strategy so the vocabulary can be extended without
// touching the parser.
type TagClassifier interface {
	Classify(title string) []string
}

// ConfigLoader loads the merged application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}
