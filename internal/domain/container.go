package domain

import "path/filepath"

// ContainerName identifies one of the three task containers.
type ContainerName string

const (
	ContainerActive    ContainerName = "active"
	ContainerBacklog   ContainerName = "backlog"
	ContainerCompleted ContainerName = "completed"
)

// AllContainers returns the three containers in lookup order.
// Find scans them in exactly this order.
func AllContainers() []ContainerName {
	return []ContainerName{ContainerActive, ContainerBacklog, ContainerCompleted}
}

// IsValid returns true if the name identifies a known container.
func (c ContainerName) IsValid() bool {
	switch c {
	case ContainerActive, ContainerBacklog, ContainerCompleted:
		return true
	default:
		return false
	}
}

// FileName returns the container's file name within the task root.
func (c ContainerName) FileName() string {
	return string(c) + ".json"
}

// Path returns the container's file path under the task root.
func (c ContainerName) Path(taskRoot string) string {
	return filepath.Join(taskRoot, c.FileName())
}
