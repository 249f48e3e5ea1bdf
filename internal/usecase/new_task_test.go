package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
	"github.com/crypto590/personal-ai-infrastructure/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Execute_Defaults(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	uc := NewNewTask(repo, clock, nil)
	out, err := uc.Execute(context.Background(), NewTaskInput{Title: "Fix login bug"})

	require.NoError(t, err)
	assert.Equal(t, "Fix login bug", out.Task.Title)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
	assert.Equal(t, domain.ContainerActive, out.Container)
	assert.Nil(t, out.Task.Completed)
}

func TestNewTask_Execute_EmptyTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{}

	uc := NewNewTask(repo, clock, nil)
	_, err := uc.Execute(context.Background(), NewTaskInput{})

	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, repo.Tasks)
}

func TestNewTask_Execute_OptionalFields(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{}

	uc := NewNewTask(repo, clock, nil)
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:     "Migrate schema",
		Notes:     "Run against staging first",
		BlockedBy: "infra review",
		Priority:  domain.PriorityHigh,
		Tags:      []string{"database"},
		DependsOn: []int{3},
	})

	require.NoError(t, err)
	require.NotNil(t, out.Task.Notes)
	assert.Equal(t, "Run against staging first", *out.Task.Notes)
	require.NotNil(t, out.Task.BlockedBy)
	assert.Equal(t, "infra review", *out.Task.BlockedBy)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, []string{"database"}, out.Task.Tags)
	assert.Equal(t, []int{3}, out.Task.DependsOn)
}

func TestNewTask_Execute_StatusRoutesContainer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    domain.Status
		container domain.ContainerName
		completed bool
	}{
		{"backlog status", domain.StatusBacklog, domain.ContainerBacklog, false},
		{"completed status", domain.StatusCompleted, domain.ContainerCompleted, true},
		{"blocked status", domain.StatusBlocked, domain.ContainerActive, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockTaskRepository()
			clock := &testutil.MockClock{NowTime: now}

			uc := NewNewTask(repo, clock, nil)
			out, err := uc.Execute(context.Background(), NewTaskInput{
				Title:  "Task",
				Status: tt.status,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.container, out.Container)
			assert.Equal(t, tt.container, repo.Containers[out.Task.ID])
			if tt.completed {
				require.NotNil(t, out.Task.Completed)
				assert.Equal(t, now, *out.Task.Completed)
			} else {
				assert.Nil(t, out.Task.Completed)
			}
		})
	}
}

func TestNewTask_Execute_LogsCreation(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{}
	logger := &testutil.MockLogger{}

	uc := NewNewTask(repo, clock, logger)
	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "Write docs"})

	require.NoError(t, err)
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0], "Write docs")
}
