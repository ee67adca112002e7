package flash

import (
	"context"
	"os/exec"
	"syscall"
	"time"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/run"
	"github.com/dosanma1/flint-cli/internal/ui"
)

const terminateGrace = 2 * time.Second

// serverFlasher spawns a local debug server, waits for its control port, and
// drives the debugger client through the shared load sequence. The spawned
// server is terminated on every exit path.
type serverFlasher struct {
	printer *ui.Printer
	opts    Options

	program     string
	installHint string
	waitTimeout time.Duration
}

func newSTUtilFlasher(p *ui.Printer, opts Options) *serverFlasher {
	return &serverFlasher{
		printer:     p,
		opts:        opts,
		program:     "st-util",
		installHint: stlinkToolsHint,
		waitTimeout: 8 * time.Second,
	}
}

func newGDBServerFlasher(p *ui.Printer, opts Options) *serverFlasher {
	program := opts.GDBServer
	if program == "" {
		program = "ST-LINK_gdbserver"
	}
	return &serverFlasher{
		printer: p,
		opts:    opts,
		program: program,
		installHint: "Install STM32CubeProgrammer (for ST-LINK_gdbserver) or provide --gdbserver <path>.\n" +
			"Alternatively use --method st-flash.",
		waitTimeout: 10 * time.Second,
	}
}

func (f *serverFlasher) Flash(ctx context.Context, art cmake.Artifact) error {
	if err := run.LookPath(f.program, f.installHint); err != nil {
		return err
	}

	r := run.NewRunner("", f.printer)
	server, err := r.Start(ctx, f.program, f.opts.ServerArgs...)
	if err != nil {
		return err
	}
	defer terminate(server)

	if err := waitPort(f.opts.Host, f.opts.Port, f.waitTimeout); err != nil {
		return err
	}

	return loadViaGDB(ctx, f.printer, f.opts.GDB, art.ELF, f.opts.Host, f.opts.Port, f.opts.ExtraGDBCommands)
}

// terminate asks the server to exit and force-kills it after a grace period.
func terminate(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}

	_ = cmd.Process.Signal(syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(terminateGrace):
		_ = cmd.Process.Kill()
		<-done
	}
}
