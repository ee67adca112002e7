package flash

import (
	"context"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/run"
	"github.com/dosanma1/flint-cli/internal/ui"
)

// dfuFlasher writes the raw binary over USB DFU.
type dfuFlasher struct {
	printer *ui.Printer
	opts    Options
}

const dfuHint = "Install it (e.g., apt-get install dfu-util, brew install dfu-util) " +
	"or use --method st-flash / st-util."

func (f *dfuFlasher) Flash(ctx context.Context, art cmake.Artifact) error {
	if err := run.LookPath("dfu-util", dfuHint); err != nil {
		return err
	}
	r := run.NewRunner("", f.printer)
	return r.Run(ctx, "dfu-util", dfuArgs(art.Bin, f.opts.Addr)...)
}

func dfuArgs(bin, addr string) []string {
	return []string{"-a", "0", "-s", addr, "-D", bin}
}
