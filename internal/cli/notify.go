package cli

import (
	"fmt"
	"io"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/crypto590/personal-ai-infrastructure/internal/usecase"
	"github.com/spf13/cobra"
)

// newNotifyCommand creates the notify command.
func newNotifyCommand(c *app.Container) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:     "notify [message]",
		Short:   "Send a voice notification",
		GroupID: groupTools,
		Long: `Send a short spoken message to the voice server.

With --stdin the message is extracted from a transcript piped in:
completion markers (🗣️ CUSTOM COMPLETED, 🎯 COMPLETED) are searched in
order and the marked phrase is cleaned and shortened for speech. This is
the form hook scripts use.

Examples:
  pai notify "Build finished"
  some-tool | pai notify --stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.SendNotificationInput{}
			if len(args) > 0 {
				input.Message = args[0]
			}
			if fromStdin {
				transcript, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input.Transcript = string(transcript)
			}
			if input.Message == "" && !fromStdin {
				return fmt.Errorf("a message argument or --stdin is required")
			}

			uc := c.SendNotificationUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if out.Skipped {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Notifications are disabled; nothing sent")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent: %s\n", out.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Extract the message from a transcript on stdin")

	return cmd
}
