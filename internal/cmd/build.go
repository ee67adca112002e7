package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Configure + build + objcopy to .bin",
	Long: `Configure and build the firmware, then convert the .elf to a raw .bin.

The repo root is found by searching upwards for CMakeLists.txt and the
project name is read from its project(...) call. The build goes into
./build/Debug_Script or ./build/Release_Script unless --build-subdir is set.

Examples:
  flint build --debug
  flint build --release --no-telemetry
  flint build --release --artifact Valve_Board26`,
	Args: cobra.NoArgs,
	RunE: runBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addBuildModeFlags(buildCmd)
}

func runBuildCmd(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(flagSymbols)

	cfg, _, err := resolveBuildConfig()
	if err != nil {
		return err
	}

	_, err = cmake.NewExecutor(cfg, printer).ConfigureAndBuild(cmd.Context())
	return err
}
