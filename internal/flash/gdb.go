package flash

import (
	"context"
	"fmt"

	"github.com/dosanma1/flint-cli/internal/run"
	"github.com/dosanma1/flint-cli/internal/ui"
)

const gdbHint = "Install the ARM GNU toolchain that provides arm-none-eabi-gdb " +
	"or pass --gdb <path>."

// gdbScript builds the batch command sequence driven through the debugger
// client: connect, optional extra commands, reset-and-halt, load, run, quit.
func gdbScript(host string, port int, extra []string) []string {
	cmds := []string{
		"set confirm off",
		"set pagination off",
		fmt.Sprintf("target extended-remote %s:%d", host, port),
	}
	cmds = append(cmds, extra...)
	return append(cmds,
		"monitor reset halt",
		"load",
		"monitor reset run",
		"quit",
	)
}

// gdbArgs renders the batch script into a debugger-client argument list.
func gdbArgs(script []string, elf string) []string {
	args := []string{"-q", "-batch"}
	for _, c := range script {
		args = append(args, "-ex", c)
	}
	return append(args, elf)
}

// loadViaGDB drives the debugger client through the shared load sequence
// against an already-listening debug server.
func loadViaGDB(ctx context.Context, p *ui.Printer, gdb, elf, host string, port int, extra []string) error {
	if err := run.LookPath(gdb, gdbHint); err != nil {
		return err
	}
	r := run.NewRunner("", p)
	return r.Run(ctx, gdb, gdbArgs(gdbScript(host, port, extra), elf)...)
}
