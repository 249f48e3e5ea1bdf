// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Path to the project-local .pai directory ("" when outside a project)
	globalConfDir string // Path to the global config directory (e.g. ~/.config)
}

// NewLoader creates a new Loader. projectDir may be empty when the current
// directory is not inside a project.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultConfigHome(),
	}
}

// NewLoaderWithConfigHome creates a new Loader with a custom config home.
// This is useful for testing.
func NewLoaderWithConfigHome(projectDir, configHome string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: configHome,
	}
}

// defaultConfigHome returns XDG_CONFIG_HOME or ~/.config.
func defaultConfigHome() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		return configHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// Load returns the merged configuration (global, then project on top).
// Missing files fall back to defaults; a malformed file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(domain.GlobalConfigPath(l.globalConfDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			merge(base, global)
		}
	}

	if l.projectDir != "" {
		project, err := l.loadFile(filepath.Join(l.projectDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if project != nil {
			merge(base, project)
		}
	}

	return base, nil
}

// loadFile loads a configuration from a single file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge overlays the set fields of overlay onto base. Zero values in the
// overlay leave the base value alone.
func merge(base, overlay *domain.Config) {
	if overlay.Tasks.Root != "" {
		base.Tasks.Root = overlay.Tasks.Root
	}
	if overlay.Notify.ServerURL != "" {
		base.Notify.ServerURL = overlay.Notify.ServerURL
	}
	if overlay.Notify.Disabled {
		base.Notify.Disabled = true
	}
	if overlay.Notify.VoiceID != "" {
		base.Notify.VoiceID = overlay.Notify.VoiceID
	}
	if overlay.Notify.TimeoutSeconds > 0 {
		base.Notify.TimeoutSeconds = overlay.Notify.TimeoutSeconds
	}
	if overlay.Log.Level != "" {
		base.Log.Level = overlay.Log.Level
	}
}
