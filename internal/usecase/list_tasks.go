package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	Container *domain.ContainerName // nil = active only; see All
	Priority  *domain.Priority      // Keep only tasks with this priority
	Status    *domain.Status        // Keep only tasks with this status
	All       bool                  // List all three containers
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the given input criteria, sorted for
// display: most urgent priority first, then in_progress before blocked
// before pending, then oldest first.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := domain.TaskFilter{Container: in.Container}
	if filter.Container == nil && !in.All {
		active := domain.ContainerActive
		filter.Container = &active
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	filtered := tasks[:0]
	for _, t := range tasks {
		if in.Priority != nil && t.Priority != *in.Priority {
			continue
		}
		if in.Status != nil && t.Status != *in.Status {
			continue
		}
		filtered = append(filtered, t)
	}

	sortForDisplay(filtered)
	return &ListTasksOutput{Tasks: filtered}, nil
}

// priorityRank orders priorities most urgent first.
func priorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityCritical:
		return 0
	case domain.PriorityHigh:
		return 1
	case domain.PriorityMedium:
		return 2
	default:
		return 3
	}
}

// statusRank orders statuses within a priority group.
func statusRank(s domain.Status) int {
	switch s {
	case domain.StatusInProgress:
		return 0
	case domain.StatusBlocked:
		return 1
	case domain.StatusPending:
		return 2
	default:
		return 3
	}
}

func sortForDisplay(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if priorityRank(a.Priority) != priorityRank(b.Priority) {
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		}
		if statusRank(a.Status) != statusRank(b.Status) {
			return statusRank(a.Status) < statusRank(b.Status)
		}
		return a.Created.Before(b.Created)
	})
}
