package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int
}

// CompleteTaskOutput contains the result of completing a task.
// Fields are ordered to minimize memory padding.
type CompleteTaskOutput struct {
	Task             *domain.Task
	Duration         time.Duration // created -> completed
	AlreadyCompleted bool          // Task was already in the completed container
}

// CompleteTask is the use case for marking a task as complete and moving
// it to the completed container.
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{tasks: tasks, logger: logger}
}

// Execute completes the task. Completing an already-completed task is
// not an error; the output flags it so the caller can warn.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, _, err := uc.tasks.Find(in.TaskID)
	if err != nil {
		return nil, err
	}

	if task.Status == domain.StatusCompleted {
		return &CompleteTaskOutput{Task: task, AlreadyCompleted: true}, nil
	}

	status := domain.StatusCompleted
	updated, _, _, err := uc.tasks.Update(in.TaskID, domain.TaskChanges{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(updated.ID, "task", fmt.Sprintf("completed: %q", updated.Title))
	}

	var duration time.Duration
	if updated.Completed != nil {
		duration = updated.Completed.Sub(updated.Created)
	}
	return &CompleteTaskOutput{Task: updated, Duration: duration}, nil
}
