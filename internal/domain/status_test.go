package domain

import "testing"

func TestStatus_Container(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		expect ContainerName
	}{
		{"pending -> active", StatusPending, ContainerActive},
		{"in_progress -> active", StatusInProgress, ContainerActive},
		{"blocked -> active", StatusBlocked, ContainerActive},
		{"backlog -> backlog", StatusBacklog, ContainerBacklog},
		{"completed -> completed", StatusCompleted, ContainerCompleted},
		// The mapping is total: unknown values still route to active.
		{"unknown -> active", Status("wat"), ContainerActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Container(); got != tt.expect {
				t.Errorf("Container() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("IsValid() = false for %v", s)
		}
	}
	if Status("done").IsValid() {
		t.Error("IsValid() = true for unknown status")
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() {
		t.Error("completed should be terminal")
	}
	for _, s := range []Status{StatusPending, StatusInProgress, StatusBlocked, StatusBacklog} {
		if s.IsTerminal() {
			t.Errorf("%v should not be terminal", s)
		}
	}
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		if !p.IsValid() {
			t.Errorf("IsValid() = false for %v", p)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error("IsValid() = true for unknown priority")
	}
}
