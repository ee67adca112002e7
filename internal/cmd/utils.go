package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/config"
)

// Build-mode flags shared by the build-capable subcommands.
var (
	flagDebug       bool
	flagRelease     bool
	flagNoTelemetry bool
)

// addModeFlags registers the mutually exclusive --debug/--release pair.
func addModeFlags(c *cobra.Command) {
	c.Flags().BoolVar(&flagDebug, "debug", false, "Debug build (default)")
	c.Flags().BoolVar(&flagRelease, "release", false, "Release build")
	c.MarkFlagsMutuallyExclusive("debug", "release")
}

// addBuildModeFlags registers the shared build-mode flags on a subcommand.
func addBuildModeFlags(c *cobra.Command) {
	addModeFlags(c)
	c.Flags().BoolVar(&flagNoTelemetry, "no-telemetry", false, "Configure with -DENABLE_TELEMETRY=OFF")
}

func buildType() cmake.BuildType {
	if flagRelease {
		return cmake.Release
	}
	return cmake.Debug
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBuildConfig assembles the immutable build configuration from flags,
// the optional .flint.yaml, and CMakeLists.txt, in that order of precedence.
func resolveBuildConfig() (cmake.Config, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return cmake.Config{}, nil, err
	}
	repoRoot, err := cmake.FindRepoRoot(cwd)
	if err != nil {
		return cmake.Config{}, nil, err
	}
	fileCfg, err := config.Load(repoRoot)
	if err != nil {
		return cmake.Config{}, nil, err
	}

	projectName := pick(flagProject, fileCfg.Project)
	if projectName == "" {
		projectName, err = cmake.ProjectName(filepath.Join(repoRoot, cmake.RootMarker))
		if err != nil {
			return cmake.Config{}, nil, err
		}
	}

	bt := buildType()

	toolchain := pick(flagToolchain, fileCfg.Toolchain)
	if toolchain == "" {
		toolchain = cmake.DefaultToolchainFile(repoRoot)
	} else if !filepath.IsAbs(toolchain) {
		toolchain = filepath.Join(repoRoot, toolchain)
	}

	telemetry := !flagNoTelemetry
	if fileCfg.Telemetry != nil && !*fileCfg.Telemetry {
		telemetry = false
	}

	cfg := cmake.Config{
		RepoRoot:      repoRoot,
		BuildType:     bt,
		Telemetry:     telemetry,
		Generator:     pick(flagGenerator, fileCfg.Generator, cmake.DefaultGenerator),
		ToolchainFile: toolchain,
		BuildSubdir:   pick(flagBuildSubdir, fileCfg.BuildSubdir, cmake.DefaultBuildSubdir(bt)),
		ProjectName:   projectName,
		Artifact:      pick(flagArtifact, fileCfg.Artifact),
	}
	if err := cfg.CheckToolchain(); err != nil {
		return cmake.Config{}, nil, err
	}
	return cfg, fileCfg, nil
}
