// Package config reads the optional .flint.yaml project file, which supplies
// defaults that CLI flags override.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project settings file expected at the repository root.
const FileName = ".flint.yaml"

// Config represents the .flint.yaml file.
type Config struct {
	// Project overrides the name parsed from CMakeLists.txt.
	Project string `yaml:"project,omitempty"`

	// Artifact is the output base name, without extension.
	Artifact string `yaml:"artifact,omitempty"`

	// Generator is the CMake generator.
	Generator string `yaml:"generator,omitempty"`

	// BuildSubdir is the folder name under ./build.
	BuildSubdir string `yaml:"build_subdir,omitempty"`

	// Toolchain is the toolchain file path, relative to the repo root
	// unless absolute.
	Toolchain string `yaml:"toolchain,omitempty"`

	// Telemetry disables the telemetry feature toggle when set to false.
	Telemetry *bool `yaml:"telemetry,omitempty"`

	// Flash holds flashing defaults.
	Flash FlashConfig `yaml:"flash,omitempty"`
}

// FlashConfig holds flashing defaults.
type FlashConfig struct {
	Method        string `yaml:"method,omitempty"`
	Addr          string `yaml:"addr,omitempty"`
	Host          string `yaml:"host,omitempty"`
	Port          int    `yaml:"port,omitempty"`
	GDB           string `yaml:"gdb,omitempty"`
	GDBServer     string `yaml:"gdbserver,omitempty"`
	STUtilArgs    string `yaml:"st_util_args,omitempty"`
	GDBServerArgs string `yaml:"gdbserver_args,omitempty"`
}

// Path returns the settings file location for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads the settings file at the repository root. A missing file is not
// an error; it yields an empty config.
func Load(repoRoot string) (*Config, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return &config, nil
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.Flash.Method {
	case "", "dfu", "st-flash", "st-util", "stlink-gdbserver":
	default:
		return fmt.Errorf("flash.method must be one of dfu, st-flash, st-util, stlink-gdbserver; got %q", c.Flash.Method)
	}
	if c.Flash.Port < 0 || c.Flash.Port > 65535 {
		return fmt.Errorf("flash.port out of range: %d", c.Flash.Port)
	}
	return nil
}
