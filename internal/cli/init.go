package cli

import (
	"fmt"
	"path/filepath"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the task store",
		GroupID: groupTask,
		Long: `Create the three task containers (active, backlog, completed).

Inside a git repository the store is created under <repo>/.pai/tasks so
tasks travel with the project; elsewhere, or with --global, it is created
under ~/.pai/tasks. Existing containers are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := filepath.Join(c.Paths.GlobalDir, domain.TasksDirName)
			if !global && c.Paths.ProjectDir != "" {
				root = filepath.Join(c.Paths.ProjectDir, domain.TasksDirName)
			}

			if err := c.StoreInitializerAt(root).Initialize(); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task store ready at %s\n", root)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Initialize the global store even inside a project")

	return cmd
}
