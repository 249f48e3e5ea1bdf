package cli

import (
	"fmt"
	"io"

	"github.com/crypto590/personal-ai-infrastructure/internal/app"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/skills"
	"github.com/spf13/cobra"
)

// newSkillCommand creates the skill command group.
func newSkillCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "skill",
		Short:   "Manage skill documents",
		GroupID: groupTools,
	}

	cmd.AddCommand(newSkillValidateCommand(c))

	return cmd
}

// newSkillValidateCommand creates the skill validate command.
func newSkillValidateCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate SKILL.md documents",
		Long: `Validate a SKILL.md document: frontmatter fields, naming
conventions, metadata schema, and body length.

With --all, <path> is a directory that is walked for SKILL.md files.

Examples:
  pai skill validate skills/code-review/SKILL.md
  pai skill validate --all skills/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator, err := c.SkillValidator()
			if err != nil {
				return err
			}

			var results []*skills.Result
			if all {
				results, err = validator.ValidateAll(args[0])
			} else {
				var result *skills.Result
				result, err = validator.ValidateFile(args[0])
				if result != nil {
					results = []*skills.Result{result}
				}
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, result := range results {
				printSkillResult(cmd.OutOrStdout(), result)
				if !result.Valid() {
					failed++
				}
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(
				fmt.Sprintf("%d checked, %d failed", len(results), failed)))
			if failed > 0 {
				return fmt.Errorf("%d skill(s) failed validation", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Validate every SKILL.md under a directory")

	return cmd
}

// printSkillResult prints one validation result.
func printSkillResult(w io.Writer, result *skills.Result) {
	status := "ok"
	if !result.Valid() {
		status = "FAIL"
	}
	_, _ = fmt.Fprintf(w, "%s %s (%d words, %d lines)\n", status, result.Path, result.Words, result.Lines)

	for _, e := range result.Errors {
		_, _ = fmt.Fprintf(w, "  error: %s\n", e)
	}
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}
