package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dosanma1/flint-cli/internal/diag"
	"github.com/dosanma1/flint-cli/internal/ui"
)

var (
	flagTrace       bool
	flagSymbols     string
	flagToolchain   string
	flagGenerator   string
	flagArtifact    string
	flagProject     string
	flagBuildSubdir string
)

var rootCmd = &cobra.Command{
	Use:   "flint",
	Short: "Build and flash CMake firmware projects",
	Long: `Flint builds CMake (Ninja) embedded firmware projects and flashes them
to the target through dfu-util, st-flash, or a GDB server.

It finds the repo root by searching upwards for CMakeLists.txt, reads the
project name from project(<name> ...), builds Debug or Release with a
toolchain file, converts the .elf to .bin, and drives the selected flashing
backend - with friendly errors instead of stack traces.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagTrace, "trace", false, "Show full error detail instead of friendly messages")
	pf.StringVar(&flagSymbols, "symbols", "auto", "UI symbols: auto, on, or off ('auto' uses emoji only on a terminal)")
	pf.StringVar(&flagToolchain, "toolchain", "", "Toolchain file path (default: <repo>/cmake/gcc-arm-none-eabi.cmake)")
	pf.StringVar(&flagGenerator, "generator", "", "CMake generator (default: Ninja)")
	pf.StringVar(&flagArtifact, "artifact", "", "Base name of output artifact (without extension), if not equal to project name")
	pf.StringVar(&flagProject, "project", "", "Override project name (otherwise read from CMakeLists.txt)")
	pf.StringVar(&flagBuildSubdir, "build-subdir", "", "Build folder name under ./build (default: Debug_Script or Release_Script)")
}

// Execute runs the CLI and returns the process exit code. All known failure
// kinds are rendered as one symbol-prefixed line; anything else is rendered
// generically unless --trace was passed.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	printer := ui.NewPrinter(flagSymbols)
	if de, ok := diag.AsError(err); ok {
		printer.Say(ui.Err, de.Error())
		return 2
	}
	if flagTrace {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	printer.Sayf(ui.Err, "Unexpected error: %v\nTip: re-run with --trace to see full details.", err)
	return 2
}
