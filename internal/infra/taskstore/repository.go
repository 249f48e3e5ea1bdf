package taskstore

import (
	"fmt"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// location identifies where a task currently lives.
type location struct {
	container domain.ContainerName
	position  int
}

// snapshot is one full read of the three containers plus an id index.
// The index makes the global uniqueness invariant mechanically checkable
// instead of assumed.
type snapshot struct {
	containers map[domain.ContainerName]*domain.Container
	index      map[int]location
}

// load reads all three containers and builds the id index. A task id
// appearing in more than one container is reported as corruption.
func (r *Repository) load() (*snapshot, error) {
	s := &snapshot{
		containers: make(map[domain.ContainerName]*domain.Container, 3),
		index:      make(map[int]location),
	}

	for _, name := range domain.AllContainers() {
		c, err := r.readContainer(name)
		if err != nil {
			return nil, err
		}
		s.containers[name] = c

		for i, task := range c.Tasks {
			if prev, ok := s.index[task.ID]; ok {
				return nil, fmt.Errorf("%w: #%d in %s and %s",
					domain.ErrDuplicateTaskID, task.ID, prev.container, name)
			}
			s.index[task.ID] = location{container: name, position: i}
		}
	}
	return s, nil
}

// NextID returns 1 + the maximum task id across all three containers,
// or 1 when no tasks exist. There is no cross-process locking; two
// concurrent invocations can allocate the same id.
func (r *Repository) NextID() (int, error) {
	s, err := r.load()
	if err != nil {
		return 0, err
	}
	return s.nextID(), nil
}

func (s *snapshot) nextID() int {
	maxID := 0
	for id := range s.index {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Find retrieves a task by id along with the container holding it.
func (r *Repository) Find(id int) (*domain.Task, domain.ContainerName, error) {
	s, err := r.load()
	if err != nil {
		return nil, "", err
	}
	return s.find(id)
}

func (s *snapshot) find(id int) (*domain.Task, domain.ContainerName, error) {
	loc, ok := s.index[id]
	if !ok {
		return nil, "", fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, id)
	}
	task := s.containers[loc.container].Tasks[loc.position]
	return &task, loc.container, nil
}

// Add appends a task to the target container. Missing id and timestamps
// are assigned; id, title, status, and priority are validated before the
// task is normalized into the canonical field set and persisted.
func (r *Repository) Add(task *domain.Task, target domain.ContainerName) (*domain.Task, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContainer, target)
	}

	s, err := r.load()
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if task.ID == 0 {
		task.ID = s.nextID()
	} else if loc, ok := s.index[task.ID]; ok {
		return nil, fmt.Errorf("%w: #%d already in %s", domain.ErrDuplicateTaskID, task.ID, loc.container)
	}
	if task.Created.IsZero() {
		task.Created = now
	}
	if task.Updated.IsZero() {
		task.Updated = now
	}

	if err := validateTask(task); err != nil {
		return nil, err
	}
	task.Normalize()

	c := s.containers[target]
	c.Tasks = append(c.Tasks, *task)
	c.LastUpdated = now

	if err := r.writeContainer(target, c); err != nil {
		return nil, err
	}
	return task, nil
}

// Update merges changes into the task, restamps updated, and routes the
// task to the container its resulting status maps to. A container change
// is two independent atomic writes (source then target) with no joint
// transaction; an interruption in between can duplicate or drop the task.
func (r *Repository) Update(id int, changes domain.TaskChanges) (*domain.Task, domain.ContainerName, domain.ContainerName, error) {
	if err := changes.Validate(); err != nil {
		return nil, "", "", err
	}

	s, err := r.load()
	if err != nil {
		return nil, "", "", err
	}

	task, source, err := s.find(id)
	if err != nil {
		return nil, "", "", err
	}

	now := r.clock.Now()
	changes.ApplyTo(task)
	task.Updated = now
	if task.Status == domain.StatusCompleted && task.Completed == nil {
		task.Completed = &now
	}
	task.Normalize()

	target := task.Status.Container()
	loc := s.index[id]

	if source != target {
		src := s.containers[source]
		src.Tasks = append(src.Tasks[:loc.position], src.Tasks[loc.position+1:]...)
		src.LastUpdated = now

		dst := s.containers[target]
		dst.Tasks = append(dst.Tasks, *task)
		dst.LastUpdated = now

		if err := r.writeContainer(source, src); err != nil {
			return nil, "", "", err
		}
		if err := r.writeContainer(target, dst); err != nil {
			return nil, "", "", err
		}
		return task, source, target, nil
	}

	c := s.containers[source]
	c.Tasks[loc.position] = *task
	c.LastUpdated = now
	if err := r.writeContainer(source, c); err != nil {
		return nil, "", "", err
	}
	return task, source, source, nil
}

// List returns tasks in container order, without cross-container
// deduplication (the uniqueness invariant makes it unnecessary).
func (r *Repository) List(filter domain.TaskFilter) ([]domain.Task, error) {
	names := domain.AllContainers()
	if filter.Container != nil {
		if !filter.Container.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContainer, *filter.Container)
		}
		names = []domain.ContainerName{*filter.Container}
	}

	var tasks []domain.Task
	for _, name := range names {
		c, err := r.readContainer(name)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, c.Tasks...)
	}
	return tasks, nil
}

// validateTask checks the required fields of a task about to be persisted.
func validateTask(task *domain.Task) error {
	if task.ID <= 0 {
		return domain.MissingFieldError("id")
	}
	if task.Title == "" {
		return domain.MissingFieldError("title")
	}
	if task.Status == "" {
		return domain.MissingFieldError("status")
	}
	if !task.Status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, task.Status)
	}
	if task.Priority == "" {
		return domain.MissingFieldError("priority")
	}
	if !task.Priority.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, task.Priority)
	}
	return nil
}
