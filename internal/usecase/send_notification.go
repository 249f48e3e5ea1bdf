package usecase

import (
	"context"
	"fmt"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// SendNotificationInput contains the parameters for sending a voice
// notification.
type SendNotificationInput struct {
	Message    string // Message to speak, used verbatim when not empty
	Transcript string // Transcript to extract a completion message from
}

// SendNotificationOutput contains the notification result.
// Fields are ordered to minimize memory padding.
type SendNotificationOutput struct {
	Message string // Message that was sent
	Skipped bool   // True when notifications are disabled
}

// SendNotification delivers a short spoken status message to the voice
// server. When no explicit message is given, one is extracted from the
// transcript's completion markers.
type SendNotification struct {
	notifier domain.Notifier
	logger   domain.Logger
	disabled bool
}

// NewSendNotification creates a new SendNotification use case.
func NewSendNotification(notifier domain.Notifier, logger domain.Logger, disabled bool) *SendNotification {
	return &SendNotification{
		notifier: notifier,
		logger:   logger,
		disabled: disabled,
	}
}

// Execute resolves the message and sends it. Delivery failures are
// logged and reported; a disabled configuration skips silently.
func (uc *SendNotification) Execute(ctx context.Context, in SendNotificationInput) (*SendNotificationOutput, error) {
	message := domain.TruncateMessage(in.Message)
	if message == "" {
		message = domain.ExtractCompletion(in.Transcript)
	}

	if uc.disabled {
		return &SendNotificationOutput{Message: message, Skipped: true}, nil
	}

	if err := uc.notifier.Notify(ctx, message); err != nil {
		if uc.logger != nil {
			uc.logger.Error(0, "notify", fmt.Sprintf("send %q: %v", message, err))
		}
		return nil, fmt.Errorf("send notification: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "notify", fmt.Sprintf("sent %q", message))
	}
	return &SendNotificationOutput{Message: message}, nil
}
