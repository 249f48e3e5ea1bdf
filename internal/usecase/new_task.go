package usecase

import (
	"context"
	"fmt"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Title     string          // Task title (required)
	Notes     string          // Free-form notes (optional)
	BlockedBy string          // What the task is blocked on (optional)
	Status    domain.Status   // Defaults to pending
	Priority  domain.Priority // Defaults to medium
	Tags      []string        // Tags (optional)
	DependsOn []int           // Task ids this one depends on (optional)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task      *domain.Task
	Container domain.ContainerName
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute creates a new task with the given input. The target container
// follows from the task's status.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	task := &domain.Task{
		Title:     in.Title,
		Status:    status,
		Priority:  priority,
		Tags:      in.Tags,
		DependsOn: in.DependsOn,
	}
	if in.Notes != "" {
		task.Notes = &in.Notes
	}
	if in.BlockedBy != "" {
		task.BlockedBy = &in.BlockedBy
	}
	if status == domain.StatusCompleted {
		now := uc.clock.Now()
		task.Completed = &now
	}

	target := status.Container()
	added, err := uc.tasks.Add(task, target)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(added.ID, "task", fmt.Sprintf("created: %q", added.Title))
	}

	return &NewTaskOutput{Task: added, Container: target}, nil
}
