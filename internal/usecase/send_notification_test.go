package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/crypto590/personal-ai-infrastructure/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNotification_Execute_ExplicitMessage(t *testing.T) {
	notifier := &testutil.MockNotifier{}

	uc := NewSendNotification(notifier, nil, false)
	out, err := uc.Execute(context.Background(), SendNotificationInput{Message: "Build finished"})

	require.NoError(t, err)
	assert.Equal(t, "Build finished", out.Message)
	assert.False(t, out.Skipped)
	assert.Equal(t, []string{"Build finished"}, notifier.Messages)
}

func TestSendNotification_Execute_ExtractsFromTranscript(t *testing.T) {
	notifier := &testutil.MockNotifier{}

	uc := NewSendNotification(notifier, nil, false)
	out, err := uc.Execute(context.Background(), SendNotificationInput{
		Transcript: "some output\n🎯 COMPLETED: Deployed the fix\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "Deployed the fix", out.Message)
}

func TestSendNotification_Execute_Disabled(t *testing.T) {
	notifier := &testutil.MockNotifier{}

	uc := NewSendNotification(notifier, nil, true)
	out, err := uc.Execute(context.Background(), SendNotificationInput{Message: "Build finished"})

	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Empty(t, notifier.Messages)
}

func TestSendNotification_Execute_DeliveryError(t *testing.T) {
	notifier := &testutil.MockNotifier{Err: errors.New("connection refused")}
	logger := &testutil.MockLogger{}

	uc := NewSendNotification(notifier, logger, false)
	_, err := uc.Execute(context.Background(), SendNotificationInput{Message: "Build finished"})

	require.Error(t, err)
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0], "connection refused")
}
