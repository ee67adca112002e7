package cmake

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/dosanma1/flint-cli/pkg/xos"
)

// ManifestName is the build record written into the build directory.
const ManifestName = "flint-build.json"

// Manifest records what the last successful build produced.
type Manifest struct {
	Project   string    `json:"project"`
	BuildType string    `json:"build_type"`
	Generator string    `json:"generator"`
	ELF       string    `json:"elf"`
	Bin       string    `json:"bin"`
	BuiltAt   time.Time `json:"built_at"`
}

// WriteManifest atomically records the build outputs in the build directory.
func WriteManifest(cfg Config, art Artifact) error {
	m := Manifest{
		Project:   cfg.ProjectName,
		BuildType: string(cfg.BuildType),
		Generator: cfg.Generator,
		ELF:       art.ELF,
		Bin:       art.Bin,
		BuiltAt:   time.Now().UTC(),
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return xos.WriteFile(filepath.Join(cfg.BuildDir(), ManifestName), data, 0o644)
}

// LinkCompileCommands points <repo>/compile_commands.json at the build
// directory's export so clangd and friends pick up the active configuration.
// It is a no-op when the build did not export one.
func LinkCompileCommands(repoRoot, buildDir string) error {
	src := filepath.Join(buildDir, "compile_commands.json")
	if _, err := os.Stat(src); err != nil {
		return nil
	}
	return xos.Symlink(src, filepath.Join(repoRoot, "compile_commands.json"))
}
