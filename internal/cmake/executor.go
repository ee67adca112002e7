package cmake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dosanma1/flint-cli/internal/run"
	"github.com/dosanma1/flint-cli/internal/ui"
)

// Executor drives the external cmake configure and build steps for one
// configuration.
type Executor struct {
	cfg     Config
	runner  *run.Runner
	printer *ui.Printer
}

// NewExecutor creates an executor rooted at the repository.
func NewExecutor(cfg Config, p *ui.Printer) *Executor {
	return &Executor{
		cfg:     cfg,
		runner:  run.NewRunner(cfg.RepoRoot, p),
		printer: p,
	}
}

// ConfigureAndBuild runs cmake configure and build, resolves the produced ELF
// image, and converts it to a raw binary. It returns the artifact pair.
func (e *Executor) ConfigureAndBuild(ctx context.Context) (Artifact, error) {
	buildDir := e.cfg.BuildDir()
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return Artifact{}, err
	}

	telemetry := "OFF"
	if e.cfg.Telemetry {
		telemetry = "ON"
	}

	if err := e.runner.Run(ctx, "cmake",
		fmt.Sprintf("-DCMAKE_BUILD_TYPE=%s", e.cfg.BuildType),
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
		"-DCMAKE_COMMAND=cmake",
		fmt.Sprintf("-DENABLE_TELEMETRY=%s", telemetry),
		"-S", e.cfg.RepoRoot,
		"-B", buildDir,
		"-G", e.cfg.Generator,
	); err != nil {
		return Artifact{}, err
	}

	if err := e.runner.Run(ctx, "cmake", "--build", buildDir, "--parallel"); err != nil {
		return Artifact{}, err
	}

	preferred := e.cfg.Artifact
	if preferred == "" {
		preferred = e.cfg.ProjectName
	}
	elf, err := PickELF(buildDir, preferred)
	if err != nil {
		return Artifact{}, err
	}

	bin := binSibling(elf)
	if err := e.runner.Run(ctx, ObjcopyTool(), objcopyArgs(elf, bin)...); err != nil {
		return Artifact{}, err
	}

	art := Artifact{ELF: elf, Bin: bin}

	// Editor tooling integration; a failure here never fails the build.
	if err := WriteManifest(e.cfg, art); err != nil {
		e.printer.Sayf(ui.Warn, "Could not write build manifest: %v", err)
	}
	if err := LinkCompileCommands(e.cfg.RepoRoot, buildDir); err != nil {
		e.printer.Sayf(ui.Warn, "Could not refresh compile_commands.json link: %v", err)
	}

	e.printer.Sayf(ui.OK, "Built: %s -> %s", filepath.Base(elf), filepath.Base(bin))
	return art, nil
}
