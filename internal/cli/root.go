// Package cli provides the command-line interface for pai.
package cli

import (
	"fmt"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupTools = "tools"
)

// NewRootCommand creates the root command for pai.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pai",
		Short: "Personal task and skill management CLI",
		Long: `pai manages a personal, file-backed task store and the skill
documents that sit next to it.

Tasks live in three JSON containers (active, backlog, completed) under
either the project's .pai/tasks directory or the global ~/.pai/tasks
fallback. Task state changes move tasks between containers; a markdown
checklist can be ingested wholesale with 'pai task create'.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupTools, Title: "Tool Commands:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newTaskCommand(c),
		newSkillCommand(c),
		newNotifyCommand(c),
	)

	return root
}
