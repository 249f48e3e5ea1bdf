package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// Checklist line markers.
const (
	openMarker    = "- [ ]"
	doneMarker    = "- [x]"
	noteIndent    = "  - "
	blockedEmoji  = "🚫"
	blockedMarker = "BLOCKED"
)

// IngestMarkdownInput contains the parameters for ingesting a checklist
// document into the task store.
type IngestMarkdownInput struct {
	Content string // Document content
	Path    string // Document path, recorded as provenance
}

// IngestMarkdownOutput contains the ingestion result.
type IngestMarkdownOutput struct {
	Created          []domain.Task // Open tasks added to the active container
	AlreadyCompleted []domain.Task // Checked tasks added to the completed container
}

// Total returns the number of tasks parsed from the document.
func (o *IngestMarkdownOutput) Total() int {
	return len(o.Created) + len(o.AlreadyCompleted)
}

// GroupByPriority returns the created tasks grouped by priority, in the
// display order of AllPriorities.
func (o *IngestMarkdownOutput) GroupByPriority() map[domain.Priority][]domain.Task {
	groups := make(map[domain.Priority][]domain.Task)
	for _, task := range o.Created {
		groups[task.Priority] = append(groups[task.Priority], task)
	}
	return groups
}

// IngestMarkdown parses a line-oriented checklist document into tasks.
//
// The pass carries two pieces of state: the current priority (set by
// headings naming a priority level, medium until the first such heading)
// and the most recently created open task, which indented bullet lines
// annotate with notes.
type IngestMarkdown struct {
	tasks      domain.TaskRepository
	classifier domain.TagClassifier
	clock      domain.Clock
	logger     domain.Logger
}

// NewIngestMarkdown creates a new IngestMarkdown use case.
func NewIngestMarkdown(tasks domain.TaskRepository, classifier domain.TagClassifier, clock domain.Clock, logger domain.Logger) *IngestMarkdown {
	return &IngestMarkdown{
		tasks:      tasks,
		classifier: classifier,
		clock:      clock,
		logger:     logger,
	}
}

// Execute ingests the document, adding each task as it is parsed.
func (uc *IngestMarkdown) Execute(_ context.Context, in IngestMarkdownInput) (*IngestMarkdownOutput, error) {
	out := &IngestMarkdownOutput{}
	priority := domain.PriorityMedium
	var lastOpen *domain.Task

	for i, line := range strings.Split(in.Content, "\n") {
		lineNo := i + 1
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if strings.HasPrefix(stripped, "#") {
			if p, ok := headingPriority(stripped); ok {
				priority = p
			}
			continue
		}

		if strings.HasPrefix(stripped, openMarker) || strings.HasPrefix(stripped, doneMarker) {
			done := strings.HasPrefix(stripped, doneMarker)
			task, err := uc.ingestTaskLine(in.Path, lineNo, stripped, priority, out)
			if err != nil {
				return nil, err
			}
			// Notes only ever attach to unchecked tasks. Keying on the
			// checkbox rather than the status keeps a checked-but-blocked
			// task in the completed container: a note's follow-up update
			// would otherwise reroute it by status.
			if task != nil && !done {
				lastOpen = task
			}
			continue
		}

		if strings.HasPrefix(line, noteIndent) && lastOpen != nil {
			if err := uc.appendNote(lastOpen, strings.TrimSpace(line[len(noteIndent):])); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ingestTaskLine parses one checklist line and adds the resulting task.
// Returns nil without error for lines with an empty title.
func (uc *IngestMarkdown) ingestTaskLine(path string, lineNo int, stripped string, priority domain.Priority, out *IngestMarkdownOutput) (*domain.Task, error) {
	done := strings.HasPrefix(stripped, doneMarker)
	title := strings.TrimSpace(stripped[len(openMarker):])
	if title == "" {
		return nil, nil
	}

	status := domain.StatusPending
	if done {
		status = domain.StatusCompleted
	}
	if strings.Contains(title, blockedEmoji) || strings.Contains(strings.ToUpper(title), blockedMarker) {
		if done && uc.logger != nil {
			// The blocked marker wins over the checkbox; the document's
			// completed signal is discarded.
			uc.logger.Warn(0, "ingest",
				fmt.Sprintf("%s:%d checked task carries a blocked marker, keeping status=blocked", path, lineNo))
		}
		status = domain.StatusBlocked
	}

	task := &domain.Task{
		Title:      title,
		Status:     status,
		Priority:   priority,
		SourceFile: &path,
		SourceLine: &lineNo,
		Tags:       uc.classifier.Classify(title),
	}

	target := domain.ContainerActive
	if done {
		target = domain.ContainerCompleted
		now := uc.clock.Now()
		task.Completed = &now
	}

	added, err := uc.tasks.Add(task, target)
	if err != nil {
		return nil, fmt.Errorf("line %d: add task: %w", lineNo, err)
	}

	if done {
		out.AlreadyCompleted = append(out.AlreadyCompleted, *added)
	} else {
		out.Created = append(out.Created, *added)
	}
	return added, nil
}

// appendNote attaches an acceptance-criteria note to the last created
// open task via a follow-up update, space-joining successive notes.
func (uc *IngestMarkdown) appendNote(task *domain.Task, text string) error {
	if text == "" {
		return nil
	}

	notes := text
	if task.Notes != nil && *task.Notes != "" {
		notes = *task.Notes + " " + text
	}

	updated, _, _, err := uc.tasks.Update(task.ID, domain.TaskChanges{Notes: &notes})
	if err != nil {
		return fmt.Errorf("annotate task #%d: %w", task.ID, err)
	}
	task.Notes = updated.Notes
	return nil
}

// headingPriority extracts a priority level from a heading line.
// The first level named on the line wins, checked most urgent first.
func headingPriority(heading string) (domain.Priority, bool) {
	upper := strings.ToUpper(heading)
	switch {
	case strings.Contains(upper, "CRITICAL"):
		return domain.PriorityCritical, true
	case strings.Contains(upper, "HIGH"):
		return domain.PriorityHigh, true
	case strings.Contains(upper, "MEDIUM"):
		return domain.PriorityMedium, true
	case strings.Contains(upper, "LOW"):
		return domain.PriorityLow, true
	default:
		return "", false
	}
}
