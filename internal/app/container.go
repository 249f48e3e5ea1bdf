// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/config"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/logging"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/notify"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/skills"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/taskstore"
	"github.com/crypto590/personal-ai-infrastructure/internal/infra/workspace"
	"github.com/crypto590/personal-ai-infrastructure/internal/usecase"
)

// Paths holds the resolved filesystem locations for this run.
type Paths struct {
	ProjectDir string // Project-local .pai directory, "" outside a repository
	GlobalDir  string // Global ~/.pai directory
	TaskRoot   string // Directory holding the three container files
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Classifier       domain.TagClassifier
	Notifier         domain.Notifier
	Logger           domain.Logger

	// Configuration
	Config *domain.Config
	Paths  Paths

	logFile *logging.Logger
}

// New creates a new Container wired for the given working directory.
func New(cwd string) (*Container, error) {
	resolver, err := workspace.NewResolver(cwd)
	if err != nil {
		return nil, err
	}

	// A broken config file must not take the CLI down with it; fall back
	// to defaults and surface the problem as a warning.
	loader := config.NewLoader(resolver.ProjectDir())
	cfg, err := loader.Load()
	if err != nil {
		cfg = domain.NewDefaultConfig()
		cfg.Warnings = append(cfg.Warnings, err.Error())
	}

	clock := domain.RealClock{}
	store := taskstore.New(resolver.TaskRoot(cfg), clock)
	logger := logging.New(resolver.GlobalDir(), logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:            store,
		StoreInitializer: store,
		Clock:            clock,
		Classifier:       domain.NewKeywordClassifier(),
		Notifier:         notify.NewClient(cfg.Notify),
		Logger:           logger,
		Config:           cfg,
		Paths: Paths{
			ProjectDir: resolver.ProjectDir(),
			GlobalDir:  resolver.GlobalDir(),
			TaskRoot:   store.Root(),
		},
		logFile: logger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, paths Paths, tasks domain.TaskRepository, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Classifier:       domain.NewKeywordClassifier(),
		Logger:           logger,
		Config:           cfg,
		Paths:            paths,
	}
}

// Close releases the log file handle.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// IngestMarkdownUseCase returns a new IngestMarkdown use case.
func (c *Container) IngestMarkdownUseCase() *usecase.IngestMarkdown {
	return usecase.NewIngestMarkdown(c.Tasks, c.Classifier, c.Clock, c.Logger)
}

// SendNotificationUseCase returns a new SendNotification use case.
// Hook invocations log to the hooks file rather than the main log.
func (c *Container) SendNotificationUseCase() *usecase.SendNotification {
	logger := logging.NewHookLogger(c.Paths.GlobalDir, logging.ParseLevel(c.Config.Log.Level))
	return usecase.NewSendNotification(c.Notifier, logger, c.Config.Notify.Disabled)
}

// StoreInitializerAt returns an initializer for a store rooted somewhere
// other than the resolved task root, e.g. when creating a project store
// while the resolver still points at the global one.
func (c *Container) StoreInitializerAt(root string) domain.StoreInitializer {
	return taskstore.New(root, c.Clock)
}

// SkillValidator returns the SKILL.md validator.
func (c *Container) SkillValidator() (*skills.Validator, error) {
	return skills.New()
}
