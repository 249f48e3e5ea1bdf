package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crypto590/personal-ai-infrastructure/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyCommand_ExplicitMessage(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	notifier := &testutil.MockNotifier{}
	container.Notifier = notifier

	cmd := newNotifyCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Build finished"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Sent: Build finished")
	assert.Equal(t, []string{"Build finished"}, notifier.Messages)
}

func TestNotifyCommand_FromStdin(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	notifier := &testutil.MockNotifier{}
	container.Notifier = notifier

	cmd := newNotifyCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("log output\n🎯 COMPLETED: Deployed the fix\n"))
	cmd.SetArgs([]string{"--stdin"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"Deployed the fix"}, notifier.Messages)
}

func TestNotifyCommand_Disabled(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	notifier := &testutil.MockNotifier{}
	container.Notifier = notifier
	container.Config.Notify.Disabled = true

	cmd := newNotifyCommand(container)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"Build finished"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "disabled")
	assert.Empty(t, notifier.Messages)
}

func TestNotifyCommand_NoMessage(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())
	container.Notifier = &testutil.MockNotifier{}

	cmd := newNotifyCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--stdin")
}
