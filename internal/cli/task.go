package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
	"github.com/crypto590/personal-ai-infrastructure/internal/usecase"
	"github.com/spf13/cobra"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Manage tasks",
		GroupID: groupTask,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := rootPersistentPreRun(cmd); err != nil {
				return err
			}
			// The store self-heals: any task operation creates missing
			// containers first.
			return c.InitStoreUseCase().Execute(cmd.Context())
		},
	}

	cmd.AddCommand(
		newTaskListCommand(c),
		newTaskAddCommand(c),
		newTaskUpdateCommand(c),
		newTaskCompleteCommand(c),
		newTaskCreateCommand(c),
	)

	return cmd
}

// rootPersistentPreRun re-runs the root pre-run hook. Cobra only invokes
// the closest PersistentPreRunE in the chain, so nested commands call up
// explicitly.
func rootPersistentPreRun(cmd *cobra.Command) error {
	root := cmd.Root()
	if root.PersistentPreRunE == nil {
		return nil
	}
	return root.PersistentPreRunE(cmd, nil)
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Priority  string
		Status    string
		Notes     string
		BlockedBy string
		Tags      []string
		DependsOn []int
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task.

The task lands in the container its status routes to: completed status
goes to the completed container, backlog to backlog, everything else to
active.

Examples:
  # Add a pending task with default (medium) priority
  pai task add "Fix login bug"

  # Add a high-priority task with notes
  pai task add "Migrate schema" --priority high --notes "Staging first"

  # Add a blocked task
  pai task add "Deploy" --status blocked --blocked-by "QA signoff"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title:     args[0],
				Notes:     opts.Notes,
				BlockedBy: opts.BlockedBy,
				Status:    domain.Status(opts.Status),
				Priority:  domain.Priority(opts.Priority),
				Tags:      opts.Tags,
				DependsOn: opts.DependsOn,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d in %s\n", out.Task.ID, out.Container)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium, high, critical (default medium)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Status: pending, in_progress, blocked, backlog, completed (default pending)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&opts.BlockedBy, "blocked-by", "", "What the task is waiting on")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	cmd.Flags().IntSliceVar(&opts.DependsOn, "depends-on", nil, "Task IDs this task depends on")

	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Container string
		Priority  string
		Status    string
		All       bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks grouped by priority.

By default only the active container is shown. Use --all for all three
containers or --container to pick one.

Examples:
  # List active tasks
  pai task list

  # List everything, including backlog and completed
  pai task list --all

  # List blocked tasks in the active container
  pai task list --status blocked`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{All: opts.All}
			if opts.Container != "" {
				container := domain.ContainerName(opts.Container)
				if !container.IsValid() {
					return fmt.Errorf("%w: %q", domain.ErrInvalidContainer, opts.Container)
				}
				input.Container = &container
			}
			if opts.Priority != "" {
				priority := domain.Priority(opts.Priority)
				if !priority.IsValid() {
					return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, opts.Priority)
				}
				input.Priority = &priority
			}
			if opts.Status != "" {
				status := domain.Status(opts.Status)
				if !status.IsValid() {
					return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, opts.Status)
				}
				input.Status = &status
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, opts.All || opts.Container != "")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all containers")
	cmd.Flags().StringVar(&opts.Container, "container", "", "Show one container: active, backlog, completed")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status")

	return cmd
}

// printTaskList prints tasks grouped by priority, most urgent first.
func printTaskList(w io.Writer, tasks []domain.Task, showContainer bool) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	groups := make(map[domain.Priority][]domain.Task)
	for _, task := range tasks {
		groups[task.Priority] = append(groups[task.Priority], task)
	}

	for _, priority := range domain.AllPriorities() {
		group := groups[priority]
		if len(group) == 0 {
			continue
		}

		_, _ = fmt.Fprintln(w, renderPriorityHeader(priority))
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, task := range group {
			tagsStr := "-"
			if len(task.Tags) > 0 {
				tagsStr = "[" + strings.Join(task.Tags, ",") + "]"
			}

			statusStr := string(task.Status)
			if task.Status == domain.StatusBlocked && task.BlockedBy != nil {
				statusStr = fmt.Sprintf("%s (%s)", task.Status, *task.BlockedBy)
			}

			if showContainer {
				_, _ = fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\t%s\n",
					task.ID, task.Status.Container(), statusStr, tagsStr, task.Title)
			} else {
				_, _ = fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\n",
					task.ID, statusStr, tagsStr, task.Title)
			}
		}
		_ = tw.Flush()
	}

	_, _ = fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d task(s)", len(tasks))))
}

// newTaskUpdateCommand creates the task update command.
func newTaskUpdateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <field> <value>",
		Short: "Update one field of a task",
		Long: fmt.Sprintf(`Update one field of a task.

Editable fields: %s. Changing status to completed or backlog moves the
task to the matching container.

Examples:
  pai task update 3 status in_progress
  pai task update 3 priority critical
  pai task update 3 tags "backend,auth"`, strings.Join(usecase.EditableFields(), ", ")),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %q", args[0])
			}

			uc := c.UpdateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UpdateTaskInput{
				ID:    id,
				Field: args[1],
				Value: args[2],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d %s: %q -> %q\n",
				out.Task.ID, args[1], out.OldValue, args[2])
			if out.Moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved: %s -> %s\n", out.Source, out.Target)
			}
			return nil
		},
	}

	return cmd
}

// newTaskCompleteCommand creates the task complete command.
func newTaskCompleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %q", args[0])
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			if out.AlreadyCompleted {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Task #%d is already completed\n", out.Task.ID)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s (open for %s)\n",
				out.Task.ID, out.Task.Title, formatDuration(out.Duration))
			return nil
		},
	}

	return cmd
}

// newTaskCreateCommand creates the task create command (markdown ingestion).
func newTaskCreateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create tasks from a markdown checklist",
		Long: `Create tasks from a markdown checklist file.

Headings containing CRITICAL, HIGH, MEDIUM or LOW set the priority for
the checkboxes below them. Unchecked boxes become pending active tasks,
checked boxes land directly in the completed container, and indented
bullet lines under a task are collected into its notes.

Example file:
  ## HIGH PRIORITY
  - [ ] Fix login bug
    - Add regression tests
  - [x] Ship hotfix`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			uc := c.IngestMarkdownUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.IngestMarkdownInput{
				Content: string(content),
				Path:    args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Created %d task(s) from %s\n", out.Total(), args[0])
			groups := out.GroupByPriority()
			for _, priority := range domain.AllPriorities() {
				group := groups[priority]
				if len(group) == 0 {
					continue
				}
				_, _ = fmt.Fprintln(w, renderPriorityHeader(priority))
				for _, task := range group {
					_, _ = fmt.Fprintf(w, "  #%d %s\n", task.ID, task.Title)
				}
			}
			if len(out.AlreadyCompleted) > 0 {
				_, _ = fmt.Fprintln(w, mutedStyle.Render(
					fmt.Sprintf("%d already completed", len(out.AlreadyCompleted))))
			}
			return nil
		},
	}

	return cmd
}

// formatDuration renders a duration in a compact human form.
func formatDuration(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		days := int(d.Hours()) / 24
		hours := int(d.Hours()) % 24
		return fmt.Sprintf("%dd%dh", days, hours)
	case d >= time.Hour:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}
