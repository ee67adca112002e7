package cmake

import (
	"os"
	"path/filepath"

	"github.com/dosanma1/flint-cli/internal/diag"
)

// BuildType selects the CMake build type.
type BuildType string

const (
	Debug   BuildType = "Debug"
	Release BuildType = "Release"
)

// DefaultGenerator is the build-system generator used unless overridden.
const DefaultGenerator = "Ninja"

// Config describes one configure+build invocation. It is assembled once from
// CLI flags and the optional project file and never mutated afterwards.
type Config struct {
	RepoRoot      string
	BuildType     BuildType
	Telemetry     bool
	Generator     string
	ToolchainFile string
	BuildSubdir   string
	ProjectName   string

	// Artifact is the output base name without extension, when it differs
	// from the project name.
	Artifact string
}

// BuildDir returns the build output directory for this configuration.
func (c Config) BuildDir() string {
	return filepath.Join(c.RepoRoot, "build", c.BuildSubdir)
}

// DefaultBuildSubdir returns the build folder name under ./build for a
// build type.
func DefaultBuildSubdir(t BuildType) string {
	if t == Release {
		return "Release_Script"
	}
	return "Debug_Script"
}

// DefaultToolchainFile returns the conventional toolchain file location.
func DefaultToolchainFile(repoRoot string) string {
	return filepath.Join(repoRoot, "cmake", "gcc-arm-none-eabi.cmake")
}

// CheckToolchain verifies that the toolchain settings file exists. The file
// is existence-checked only, never parsed.
func (c Config) CheckToolchain() error {
	if _, err := os.Stat(c.ToolchainFile); err != nil {
		return diag.New(diag.ToolchainMissing, "Toolchain file not found: %s", c.ToolchainFile).
			WithHint("Pass --toolchain <path> to set it explicitly.")
	}
	return nil
}
