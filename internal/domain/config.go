package domain

import "path/filepath"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Tasks    TasksConfig  `toml:"tasks"`
	Notify   NotifyConfig `toml:"notify"`
	Log      LogConfig    `toml:"log"`
	Warnings []string     `toml:"-"`
}

// TasksConfig holds settings for task storage from [tasks] section.
type TasksConfig struct {
	// Root overrides task root resolution entirely when set.
	Root string `toml:"root,omitempty"`
}

// NotifyConfig holds voice notification settings from [notify] section.
type NotifyConfig struct {
	ServerURL      string `toml:"server_url,omitempty"` // Voice server endpoint
	VoiceID        string `toml:"voice_id,omitempty"`   // Voice to speak with
	TimeoutSeconds int    `toml:"timeout,omitempty"`    // Request timeout in seconds
	Disabled       bool   `toml:"disabled,omitempty"`   // Suppress voice notifications
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error (default: info)
}

// Default notification values, matching the original voice hook setup.
const (
	DefaultNotifyServerURL = "http://localhost:8888/notify"
	DefaultNotifyVoiceID   = "O4lTuRmkE5LyjL2YhMIg"
	DefaultNotifyTimeout   = 3
)

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Notify: NotifyConfig{
			ServerURL:      DefaultNotifyServerURL,
			VoiceID:        DefaultNotifyVoiceID,
			TimeoutSeconds: DefaultNotifyTimeout,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Directory and file names.
const (
	PaiDirName     = ".pai"        // Per-project and per-user data directory
	TasksDirName   = "tasks"       // Task containers live here
	ConfigFileName = "config.toml" // Config file name
	ConfigDirName  = "pai"         // Directory under XDG_CONFIG_HOME
)

// ProjectPaiDir returns the project-local data directory.
func ProjectPaiDir(projectRoot string) string {
	return filepath.Join(projectRoot, PaiDirName)
}

// ProjectTaskRoot returns the project-local task root.
func ProjectTaskRoot(projectRoot string) string {
	return filepath.Join(ProjectPaiDir(projectRoot), TasksDirName)
}

// ProjectConfigPath returns the project-local config path.
func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(ProjectPaiDir(projectRoot), ConfigFileName)
}

// GlobalPaiDir returns the global data directory under the user's home.
func GlobalPaiDir(home string) string {
	return filepath.Join(home, PaiDirName)
}

// GlobalTaskRoot returns the global task root.
func GlobalTaskRoot(home string) string {
	return filepath.Join(GlobalPaiDir(home), TasksDirName)
}

// GlobalConfigPath returns the global config path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(configHome, ConfigDirName, ConfigFileName)
}

// LogsDir returns the log directory for a data directory.
func LogsDir(paiDir string) string {
	return filepath.Join(paiDir, "logs")
}

// GlobalLogPath returns the path to the main log file.
func GlobalLogPath(paiDir string) string {
	return filepath.Join(LogsDir(paiDir), "pai.log")
}

// HooksLogPath returns the path to the hook log file.
func HooksLogPath(paiDir string) string {
	return filepath.Join(LogsDir(paiDir), "hooks.log")
}
