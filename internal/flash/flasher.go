// Package flash programs a built firmware image onto the target through one
// of four interchangeable backend strategies.
package flash

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/ui"
)

// Method names accepted by the dispatcher.
const (
	MethodDFU       = "dfu"
	MethodSTFlash   = "st-flash"
	MethodSTUtil    = "st-util"
	MethodGDBServer = "stlink-gdbserver"
)

// Default ports for the server-based methods. The gdbserver default is a
// convention without vendor backing; --port overrides it.
const (
	DefaultSTUtilPort    = 4242
	DefaultGDBServerPort = 61234
)

// DefaultAddr is the flash base address used unless overridden.
const DefaultAddr = "0x08000000"

// Options carries method-specific flashing parameters. Fields that a given
// method does not use are ignored by it.
type Options struct {
	// Addr is the programming base address (dfu, st-flash).
	Addr string
	// Reset requests a reset after writing (st-flash).
	Reset bool

	// Host and Port locate the debug server (st-util, stlink-gdbserver).
	Host string
	Port int
	// GDB is the debugger client executable.
	GDB string
	// GDBServer is the vendor gdbserver executable (stlink-gdbserver).
	GDBServer string
	// ServerArgs are extra arguments for the spawned debug server.
	ServerArgs []string
	// ExtraGDBCommands run right after connecting, before the reset-and-halt.
	ExtraGDBCommands []string
}

// Flasher is the shared contract over the four backend strategies.
type Flasher interface {
	// Flash performs the device-programming sequence for one artifact pair.
	Flash(ctx context.Context, art cmake.Artifact) error
}

type factory func(p *ui.Printer, opts Options) Flasher

var methods = map[string]factory{
	MethodDFU:     func(p *ui.Printer, opts Options) Flasher { return &dfuFlasher{printer: p, opts: opts} },
	MethodSTFlash: func(p *ui.Printer, opts Options) Flasher { return &stFlashFlasher{printer: p, opts: opts} },
	MethodSTUtil:  func(p *ui.Printer, opts Options) Flasher { return newSTUtilFlasher(p, opts) },
	MethodGDBServer: func(p *ui.Printer, opts Options) Flasher {
		return newGDBServerFlasher(p, opts)
	},
}

// New returns the flasher registered under the given method name.
func New(method string, p *ui.Printer, opts Options) (Flasher, error) {
	f, ok := methods[method]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s (choose from %s)", method, strings.Join(Methods(), ", "))
	}
	return f(p, opts), nil
}

// Methods lists the registered method names.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
