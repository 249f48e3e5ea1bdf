package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not started
	StatusInProgress Status = "in_progress" // Being worked on
	StatusBlocked    Status = "blocked"     // Waiting on something external
	StatusBacklog    Status = "backlog"     // Deferred, not on the active list
	StatusCompleted  Status = "completed"   // Terminal state
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusBlocked,
		StatusBacklog,
		StatusCompleted,
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusBlocked, StatusBacklog, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Container returns the container a task with this status lives in.
// The mapping is total: completed and backlog have their own containers,
// every other status routes to active.
func (s Status) Container() ContainerName {
	switch s {
	case StatusCompleted:
		return ContainerCompleted
	case StatusBacklog:
		return ContainerBacklog
	default:
		return ContainerActive
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusBlocked:
		return "Blocked"
	case StatusBacklog:
		return "Backlog"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
