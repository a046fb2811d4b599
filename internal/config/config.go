package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// DirectoryConfig holds optional per-directory defaults read from
// scriptsort.yaml inside the target directory. Every field may be omitted;
// resolution order is flag > environment > scriptsort.yaml > built-in
// default.
type DirectoryConfig struct {
	// Cutoff overrides the default low/high boundary for this directory.
	Cutoff int `yaml:"cutoff,omitempty"`

	// TimerCommand overrides the external millisecond-timestamp command
	// referenced by generated shell snippets.
	TimerCommand string `yaml:"timer_command,omitempty"`
}

const ConfigFileName = "scriptsort.yaml"

// Load reads scriptsort.yaml from sourcePath. The file is optional;
// a missing file yields ErrConfigNotFound.
func Load(sourcePath string) (*DirectoryConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg DirectoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
