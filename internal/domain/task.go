// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a unit of trackable work.
// JSON field order is the canonical container schema order; unset optional
// fields serialize as null, and tags/depends_on serialize as [] when empty.
type Task struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Status     Status     `json:"status"`
	Priority   Priority   `json:"priority"`
	Created    time.Time  `json:"created"`
	Updated    time.Time  `json:"updated"`
	Completed  *time.Time `json:"completed"`
	SourceFile *string    `json:"source_file"`
	SourceLine *int       `json:"source_line"`
	Notes      *string    `json:"notes"`
	Tags       []string   `json:"tags"`
	BlockedBy  *string    `json:"blocked_by"`
	DependsOn  []int      `json:"depends_on"`
}

// Normalize fills the optional collection fields so the task serializes to
// the canonical shape ([] rather than null).
func (t *Task) Normalize() {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.DependsOn == nil {
		t.DependsOn = []int{}
	}
}

// IsBlocked returns true if the task is in the blocked state.
func (t *Task) IsBlocked() bool {
	return t.Status == StatusBlocked
}

// Container is the JSON body of one container file.
type Container struct {
	Version     string    `json:"version"`
	Source      *string   `json:"source"`
	Created     time.Time `json:"created"`
	LastUpdated time.Time `json:"last_updated"`
	Tasks       []Task    `json:"tasks"`
}

// ContainerVersion is the schema version written to new container files.
const ContainerVersion = "1.0.0"

// NewContainer returns an empty container stamped at now.
func NewContainer(now time.Time) *Container {
	return &Container{
		Version:     ContainerVersion,
		Source:      nil,
		Created:     now,
		LastUpdated: now,
		Tasks:       []Task{},
	}
}

// TaskChanges describes a partial update to a task. Nil fields are left
// untouched by the merge.
type TaskChanges struct {
	Title     *string
	Status    *Status
	Priority  *Priority
	Notes     *string
	BlockedBy *string
	Completed *time.Time
	Tags      []string
	DependsOn []int
}

// Validate rejects enum values the schema does not know.
func (c TaskChanges) Validate() error {
	if c.Status != nil && !c.Status.IsValid() {
		return ErrInvalidStatus
	}
	if c.Priority != nil && !c.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// ApplyTo merges the changes into the task.
func (c TaskChanges) ApplyTo(t *Task) {
	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Status != nil {
		t.Status = *c.Status
	}
	if c.Priority != nil {
		t.Priority = *c.Priority
	}
	if c.Notes != nil {
		t.Notes = c.Notes
	}
	if c.BlockedBy != nil {
		t.BlockedBy = c.BlockedBy
	}
	if c.Completed != nil {
		t.Completed = c.Completed
	}
	if c.Tags != nil {
		t.Tags = c.Tags
	}
	if c.DependsOn != nil {
		t.DependsOn = c.DependsOn
	}
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Container *ContainerName // nil = all three containers
}
