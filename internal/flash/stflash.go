package flash

import (
	"context"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/run"
	"github.com/dosanma1/flint-cli/internal/ui"
)

// stFlashFlasher writes the raw binary through an ST-LINK dongle using the
// stlink tools' flash writer.
type stFlashFlasher struct {
	printer *ui.Printer
	opts    Options
}

const stlinkToolsHint = "Install STLink tools (stlink). On Ubuntu: apt-get install stlink-tools. " +
	"On macOS: brew install stlink."

func (f *stFlashFlasher) Flash(ctx context.Context, art cmake.Artifact) error {
	if err := run.LookPath("st-flash", stlinkToolsHint); err != nil {
		return err
	}
	r := run.NewRunner("", f.printer)
	return r.Run(ctx, "st-flash", stFlashArgs(art.Bin, f.opts.Addr, f.opts.Reset)...)
}

func stFlashArgs(bin, addr string, reset bool) []string {
	var args []string
	if reset {
		args = append(args, "--reset")
	}
	return append(args, "write", bin, addr)
}
