package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// UpdateTaskInput contains the parameters for updating one task field.
// Fields are ordered to minimize memory padding.
type UpdateTaskInput struct {
	Field string // One of: title, status, priority, notes, tags, blocked_by
	Value string // New value; tags are comma-separated
	ID    int    // Task ID
}

// UpdateTaskOutput contains the result of updating a task.
// Fields are ordered to minimize memory padding.
type UpdateTaskOutput struct {
	Task     *domain.Task
	OldValue string
	Source   domain.ContainerName
	Target   domain.ContainerName
	Moved    bool
}

// UpdateTask is the use case for updating a single task field.
type UpdateTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, logger domain.Logger) *UpdateTask {
	return &UpdateTask{tasks: tasks, logger: logger}
}

// editableFields are the fields update accepts, in usage-message order.
var editableFields = []string{"title", "status", "priority", "notes", "tags", "blocked_by"}

// EditableFields returns the field names update accepts.
func EditableFields() []string {
	return editableFields
}

// Execute updates one field of the task, moving it between containers
// when the resulting status routes elsewhere.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	changes, err := buildChanges(in.Field, in.Value)
	if err != nil {
		return nil, err
	}

	current, _, err := uc.tasks.Find(in.ID)
	if err != nil {
		return nil, err
	}
	oldValue := fieldValue(current, in.Field)

	task, source, target, err := uc.tasks.Update(in.ID, changes)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task",
			fmt.Sprintf("updated %s: %q -> %q", in.Field, oldValue, in.Value))
		if source != target {
			uc.logger.Info(task.ID, "task",
				fmt.Sprintf("moved: %s -> %s", source, target))
		}
	}

	return &UpdateTaskOutput{
		Task:     task,
		OldValue: oldValue,
		Source:   source,
		Target:   target,
		Moved:    source != target,
	}, nil
}

// buildChanges maps a field name and raw value onto a TaskChanges.
func buildChanges(field, value string) (domain.TaskChanges, error) {
	var changes domain.TaskChanges
	switch field {
	case "title":
		if value == "" {
			return changes, domain.ErrEmptyTitle
		}
		changes.Title = &value
	case "status":
		status := domain.Status(value)
		if !status.IsValid() {
			return changes, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, value)
		}
		changes.Status = &status
	case "priority":
		priority := domain.Priority(value)
		if !priority.IsValid() {
			return changes, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, value)
		}
		changes.Priority = &priority
	case "notes":
		changes.Notes = &value
	case "tags":
		tags := strings.Split(value, ",")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}
		changes.Tags = tags
	case "blocked_by":
		changes.BlockedBy = &value
	default:
		return changes, fmt.Errorf("%w: %q (valid: %s)",
			domain.ErrFieldNotEditable, field, strings.Join(editableFields, ", "))
	}
	return changes, nil
}

// fieldValue renders the current value of an editable field for display.
func fieldValue(task *domain.Task, field string) string {
	switch field {
	case "title":
		return task.Title
	case "status":
		return string(task.Status)
	case "priority":
		return string(task.Priority)
	case "notes":
		if task.Notes == nil {
			return ""
		}
		return *task.Notes
	case "tags":
		return strings.Join(task.Tags, ", ")
	case "blocked_by":
		if task.BlockedBy == nil {
			return ""
		}
		return *task.BlockedBy
	default:
		return ""
	}
}
