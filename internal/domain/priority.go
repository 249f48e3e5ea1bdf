package domain

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AllPriorities returns all valid priority values, most urgent first.
// The order is the display order for priority-grouped listings.
func AllPriorities() []Priority {
	return []Priority{
		PriorityCritical,
		PriorityHigh,
		PriorityMedium,
		PriorityLow,
	}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "LOW PRIORITY"
	case PriorityMedium:
		return "MEDIUM PRIORITY"
	case PriorityHigh:
		return "HIGH PRIORITY"
	case PriorityCritical:
		return "CRITICAL PRIORITY"
	default:
		return string(p)
	}
}
