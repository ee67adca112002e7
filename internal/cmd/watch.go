package cmd

import (
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/daemon"
	"github.com/dosanma1/flint-cli/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever a source file changes",
	Long: `Watch the repository for source changes and rebuild on each one.

Watches *.c, *.h, *.s, linker scripts, and CMake files; the build output
directory is ignored. Stop with ctrl-c.`,
	Args: cobra.NoArgs,
	RunE: runWatchCmd,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addBuildModeFlags(watchCmd)
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(flagSymbols)

	cfg, _, err := resolveBuildConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := daemon.NewWatcher(daemon.DefaultWatcherConfig(cfg.RepoRoot))
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	executor := cmake.NewExecutor(cfg, printer)

	// Initial build so the watch loop starts from a known state. A failure
	// is reported but watching continues.
	if _, err := executor.ConfigureAndBuild(ctx); err != nil {
		printer.Sayf(ui.Err, "%v", err)
	}
	printer.Sayf(ui.Info, "Watching %s for changes (ctrl-c to stop)", cfg.RepoRoot)

	for {
		select {
		case <-ctx.Done():
			printer.Say(ui.Info, "Stopped watching.")
			return nil
		case path := <-watcher.Changes():
			rel, relErr := filepath.Rel(cfg.RepoRoot, path)
			if relErr != nil {
				rel = path
			}
			printer.Sayf(ui.Info, "Changed: %s", rel)
			if _, err := executor.ConfigureAndBuild(ctx); err != nil {
				printer.Sayf(ui.Err, "%v", err)
			}
		case err := <-watcher.Errors():
			printer.Sayf(ui.Warn, "Watcher error: %v", err)
		}
	}
}
