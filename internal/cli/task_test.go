package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
	"github.com/crypto590/personal-ai-infrastructure/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockTaskRepository) *app.Container {
	return app.NewWithDeps(
		domain.NewDefaultConfig(),
		app.Paths{},
		repo,
		&testutil.MockStoreInitializer{},
		&testutil.MockClock{NowTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		&testutil.MockLogger{},
	)
}

func TestTaskAddCommand_CreateTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Fix login bug"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created task #1 in active")

	task := repo.Tasks[1]
	require.NotNil(t, task)
	assert.Equal(t, "Fix login bug", task.Title)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
}

func TestTaskAddCommand_Flags(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Deploy", "--priority", "high", "--status", "blocked", "--blocked-by", "QA signoff", "--tag", "deployment"})

	err := cmd.Execute()

	require.NoError(t, err)
	task := repo.Tasks[1]
	require.NotNil(t, task)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.StatusBlocked, task.Status)
	require.NotNil(t, task.BlockedBy)
	assert.Equal(t, "QA signoff", *task.BlockedBy)
	assert.Equal(t, []string{"deployment"}, task.Tags)
}

func TestTaskAddCommand_EmptyTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{""})

	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestTaskListCommand_GroupsByPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Put(&domain.Task{ID: 1, Title: "Urgent fix", Status: domain.StatusPending, Priority: domain.PriorityCritical}, domain.ContainerActive)
	repo.Put(&domain.Task{ID: 2, Title: "Cleanup", Status: domain.StatusPending, Priority: domain.PriorityLow}, domain.ContainerActive)
	container := newTestContainer(repo)

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Urgent fix")
	assert.Contains(t, out, "Cleanup")
	assert.Contains(t, out, "2 task(s)")
	// Critical group comes before low
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Urgent fix")), bytes.Index(buf.Bytes(), []byte("Cleanup")))
}

func TestTaskListCommand_Empty(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No tasks.")
}

func TestTaskListCommand_InvalidContainer(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--container", "archive"})

	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrInvalidContainer)
}

func TestTaskUpdateCommand_MovesBetweenContainers(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Put(&domain.Task{ID: 3, Title: "Task", Status: domain.StatusPending, Priority: domain.PriorityMedium}, domain.ContainerActive)
	container := newTestContainer(repo)

	cmd := newTaskUpdateCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"3", "status", "backlog"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Updated task #3 status: "pending" -> "backlog"`)
	assert.Contains(t, buf.String(), "Moved: active -> backlog")
}

func TestTaskUpdateCommand_InvalidID(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskUpdateCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"three", "status", "backlog"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task ID")
}

func TestTaskCompleteCommand(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Put(&domain.Task{ID: 1, Title: "Ship it", Status: domain.StatusInProgress, Priority: domain.PriorityHigh}, domain.ContainerActive)
	container := newTestContainer(repo)

	cmd := newTaskCompleteCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Completed task #1: Ship it")
	assert.Equal(t, domain.ContainerCompleted, repo.Containers[1])
}

func TestTaskCompleteCommand_AlreadyCompleted(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Put(&domain.Task{ID: 1, Title: "Done", Status: domain.StatusCompleted, Priority: domain.PriorityMedium}, domain.ContainerCompleted)
	container := newTestContainer(repo)

	cmd := newTaskCompleteCommand(container)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "already completed")
}

func TestTaskCreateCommand_IngestsChecklist(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	path := filepath.Join(t.TempDir(), "todo.md")
	content := "## HIGH PRIORITY\n- [ ] Fix login bug\n  - Add tests\n- [x] Ship hotfix\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := newTaskCreateCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created 2 task(s)")
	assert.Contains(t, buf.String(), "Fix login bug")
	assert.Contains(t, buf.String(), "1 already completed")
}

func TestTaskCreateCommand_MissingFile(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newTaskCreateCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.md")})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{90 * time.Minute, "1h30m"},
		{26 * time.Hour, "1d2h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}
