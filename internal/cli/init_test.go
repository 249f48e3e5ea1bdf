package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/crypto590/personal-ai-infrastructure/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand_ProjectStore(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	projectDir := filepath.Join(t.TempDir(), ".pai")
	container.Paths = app.Paths{
		ProjectDir: projectDir,
		GlobalDir:  filepath.Join(t.TempDir(), ".pai"),
	}

	cmd := newInitCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Task store ready")
	for _, name := range []string{"active.json", "backlog.json", "completed.json"} {
		_, err := os.Stat(filepath.Join(projectDir, "tasks", name))
		assert.NoError(t, err, name)
	}
}

func TestInitCommand_GlobalFlag(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	globalDir := filepath.Join(t.TempDir(), ".pai")
	container.Paths = app.Paths{
		ProjectDir: filepath.Join(t.TempDir(), ".pai"),
		GlobalDir:  globalDir,
	}

	cmd := newInitCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--global"})

	err := cmd.Execute()

	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(globalDir, "tasks", "active.json"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(container.Paths.ProjectDir, "tasks"))
	assert.True(t, os.IsNotExist(statErr))
}
