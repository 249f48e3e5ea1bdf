// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is an in-memory test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks      map[int]*domain.Task
	Containers map[int]domain.ContainerName
	AddErr     error
	UpdateErr  error
	ListErr    error
	NextIDN    int
	UpdateN    int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:      make(map[int]*domain.Task),
		Containers: make(map[int]domain.ContainerName),
		NextIDN:    1,
	}
}

// Put places a task into a container directly, bypassing Add semantics.
func (m *MockTaskRepository) Put(task *domain.Task, container domain.ContainerName) {
	m.Tasks[task.ID] = task
	m.Containers[task.ID] = container
	if task.ID >= m.NextIDN {
		m.NextIDN = task.ID + 1
	}
}

// NextID returns the next available task ID.
func (m *MockTaskRepository) NextID() (int, error) {
	return m.NextIDN, nil
}

// Find retrieves a task by ID.
func (m *MockTaskRepository) Find(id int) (*domain.Task, domain.ContainerName, error) {
	task, ok := m.Tasks[id]
	if !ok {
		return nil, "", domain.ErrTaskNotFound
	}
	return task, m.Containers[id], nil
}

// Add stores a task in the target container, assigning an ID when absent.
func (m *MockTaskRepository) Add(task *domain.Task, target domain.ContainerName) (*domain.Task, error) {
	if m.AddErr != nil {
		return nil, m.AddErr
	}
	if task.ID == 0 {
		task.ID = m.NextIDN
	}
	task.Normalize()
	m.Put(task, target)
	return task, nil
}

// Update merges changes into the stored task and reroutes it by status.
func (m *MockTaskRepository) Update(id int, changes domain.TaskChanges) (*domain.Task, domain.ContainerName, domain.ContainerName, error) {
	if m.UpdateErr != nil {
		return nil, "", "", m.UpdateErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, "", "", domain.ErrTaskNotFound
	}
	m.UpdateN++
	source := m.Containers[id]
	changes.ApplyTo(task)
	target := task.Status.Container()
	m.Containers[id] = target
	return task, source, target, nil
}

// List returns tasks matching the filter.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var tasks []domain.Task
	for id, task := range m.Tasks {
		if filter.Container != nil && m.Containers[id] != *filter.Container {
			continue
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
}

// Initialize records the call.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// MockNotifier is a test double for domain.Notifier.
type MockNotifier struct {
	Messages []string
	Err      error
}

// Notify records the message.
func (m *MockNotifier) Notify(_ context.Context, message string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, message)
	return nil
}

// MockLogger is a test double for domain.Logger that records messages.
type MockLogger struct {
	Entries []string
}

// Debug records the message.
func (m *MockLogger) Debug(_ int, _, msg string) { m.Entries = append(m.Entries, msg) }

// Info records the message.
func (m *MockLogger) Info(_ int, _, msg string) { m.Entries = append(m.Entries, msg) }

// Warn records the message.
func (m *MockLogger) Warn(_ int, _, msg string) { m.Entries = append(m.Entries, msg) }

// Error records the message.
func (m *MockLogger) Error(_ int, _, msg string) { m.Entries = append(m.Entries, msg) }
