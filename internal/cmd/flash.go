package cmd

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/config"
	"github.com/dosanma1/flint-cli/internal/flash"
	"github.com/dosanma1/flint-cli/internal/ui"
)

var (
	flashMethod        string
	flashAddr          string
	flashNoReset       bool
	flashHost          string
	flashPort          int
	flashGDB           string
	flashSTUtilArgs    string
	flashGDBServer     string
	flashGDBServerArgs string
	flashGDBCmds       []string
)

var flashCmd = &cobra.Command{
	Use:   "flash",
	Short: "Build then flash",
	Long: `Build the firmware, then program it onto the target.

Methods:
  dfu               dfu-util over USB DFU
  st-flash          st-flash over an ST-LINK dongle (default)
  st-util           st-util GDB server + debugger load
  stlink-gdbserver  ST-LINK_gdbserver (STM32CubeProgrammer) + debugger load

Examples:
  flint flash --debug --method st-flash
  flint flash --release --method dfu --addr 0x08000000
  flint flash --method st-util --st-util-args "-p 4500" --port 4500`,
	Args: cobra.NoArgs,
	RunE: runFlashCmd,
}

func init() {
	rootCmd.AddCommand(flashCmd)
	addBuildModeFlags(flashCmd)

	f := flashCmd.Flags()
	f.StringVar(&flashMethod, "method", "", "Flashing method: dfu, st-flash, st-util, or stlink-gdbserver (default: st-flash)")
	f.StringVar(&flashAddr, "addr", "", "Flash base address (default: 0x08000000)")
	f.BoolVar(&flashNoReset, "no-reset", false, "Do not reset after flash (st-flash only)")
	f.StringVar(&flashHost, "host", "", "GDB server host (default: 127.0.0.1)")
	f.IntVar(&flashPort, "port", 0, "GDB server port (st-util default 4242; gdbserver default 61234, a guess - override as needed)")
	f.StringVar(&flashGDB, "gdb", "", "GDB executable (default: arm-none-eabi-gdb)")
	f.StringVar(&flashSTUtilArgs, "st-util-args", "", "Extra args for st-util (quoted string)")
	f.StringVar(&flashGDBServer, "gdbserver", "", "GDB server executable (default: ST-LINK_gdbserver)")
	f.StringVar(&flashGDBServerArgs, "gdbserver-args", "", "Extra args for the gdbserver (quoted string)")
	f.StringArrayVar(&flashGDBCmds, "gdb-cmd", nil, "Extra GDB command run after connecting, before the reset-and-halt (repeatable)")
}

func runFlashCmd(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(flagSymbols)

	cfg, fileCfg, err := resolveBuildConfig()
	if err != nil {
		return err
	}

	art, err := cmake.NewExecutor(cfg, printer).ConfigureAndBuild(cmd.Context())
	if err != nil {
		return err
	}

	method := pick(flashMethod, fileCfg.Flash.Method, flash.MethodSTFlash)
	opts, err := flashOptions(method, fileCfg.Flash)
	if err != nil {
		return err
	}

	flasher, err := flash.New(method, printer, opts)
	if err != nil {
		return err
	}
	if err := flasher.Flash(cmd.Context(), art); err != nil {
		return err
	}

	printer.Sayf(ui.OK, "Flashed using method: %s", method)
	return nil
}

// flashOptions merges flags over .flint.yaml defaults into the method
// parameter set.
func flashOptions(method string, fileCfg config.FlashConfig) (flash.Options, error) {
	opts := flash.Options{
		Addr:             pick(flashAddr, fileCfg.Addr, flash.DefaultAddr),
		Reset:            !flashNoReset,
		Host:             pick(flashHost, fileCfg.Host, "127.0.0.1"),
		GDB:              pick(flashGDB, fileCfg.GDB, "arm-none-eabi-gdb"),
		GDBServer:        pick(flashGDBServer, fileCfg.GDBServer),
		ExtraGDBCommands: flashGDBCmds,
	}

	opts.Port = flashPort
	if opts.Port == 0 {
		opts.Port = fileCfg.Port
	}
	if opts.Port == 0 {
		switch method {
		case flash.MethodGDBServer:
			opts.Port = flash.DefaultGDBServerPort
		default:
			opts.Port = flash.DefaultSTUtilPort
		}
	}

	raw := pick(flashSTUtilArgs, fileCfg.STUtilArgs)
	if method == flash.MethodGDBServer {
		raw = pick(flashGDBServerArgs, fileCfg.GDBServerArgs)
	}
	if raw != "" {
		serverArgs, err := shlex.Split(raw)
		if err != nil {
			return flash.Options{}, fmt.Errorf("invalid server arguments %q: %w", raw, err)
		}
		opts.ServerArgs = serverArgs
	}

	return opts, nil
}
