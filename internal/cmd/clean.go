package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/ui"
)

var (
	cleanAll bool
	cleanYes bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build output",
	Long: `Remove the build output directory for the selected mode.

Use --all to remove the whole ./build directory regardless of mode.`,
	Args: cobra.NoArgs,
	RunE: runCleanCmd,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Remove the whole ./build directory")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
	addModeFlags(cleanCmd)
}

func runCleanCmd(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(flagSymbols)

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repoRoot, err := cmake.FindRepoRoot(cwd)
	if err != nil {
		return err
	}

	target := filepath.Join(repoRoot, "build")
	if !cleanAll {
		subdir := flagBuildSubdir
		if subdir == "" {
			subdir = cmake.DefaultBuildSubdir(buildType())
		}
		target = filepath.Join(target, subdir)
	}

	if _, err := os.Stat(target); os.IsNotExist(err) {
		printer.Sayf(ui.Info, "Nothing to clean: %s does not exist", target)
		return nil
	}

	if !cleanYes {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to remove %s without confirmation; pass --yes", target)
		}
		ok, err := ui.AskConfirm(fmt.Sprintf("Remove %s?", target), false)
		if err != nil {
			return err
		}
		if !ok {
			printer.Say(ui.Info, "Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(target); err != nil {
		return err
	}
	printer.Sayf(ui.OK, "Removed %s", target)
	return nil
}
