package usecase

import (
	"context"
	"testing"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
	"github.com/crypto590/personal-ai-infrastructure/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteTask_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Put(&domain.Task{ID: 1, Title: "Ship release", Status: domain.StatusInProgress, Priority: domain.PriorityHigh}, domain.ContainerActive)
	logger := &testutil.MockLogger{}

	uc := NewCompleteTask(repo, logger)
	out, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.False(t, out.AlreadyCompleted)
	assert.Equal(t, domain.StatusCompleted, out.Task.Status)
	assert.Equal(t, domain.ContainerCompleted, repo.Containers[1])
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0], "Ship release")
}

func TestCompleteTask_Execute_AlreadyCompleted(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Put(&domain.Task{ID: 1, Title: "Done", Status: domain.StatusCompleted, Priority: domain.PriorityMedium}, domain.ContainerCompleted)

	uc := NewCompleteTask(repo, nil)
	out, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.True(t, out.AlreadyCompleted)
	assert.Zero(t, repo.UpdateN)
}

func TestCompleteTask_Execute_NotFound(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	uc := NewCompleteTask(repo, nil)
	_, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 7})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}
