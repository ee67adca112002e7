package flash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/diag"
	"github.com/dosanma1/flint-cli/internal/ui"
)

func TestMethods(t *testing.T) {
	assert.Equal(t, []string{"dfu", "st-flash", "st-util", "stlink-gdbserver"}, Methods())
}

func TestNew(t *testing.T) {
	p := ui.NewPrinter("off")

	for _, method := range Methods() {
		t.Run(method, func(t *testing.T) {
			f, err := New(method, p, Options{})
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}

	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := New("jtag", p, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jtag")
		assert.Contains(t, err.Error(), "st-flash")
	})
}

func TestSTFlashArgs(t *testing.T) {
	t.Run("WithReset", func(t *testing.T) {
		got := stFlashArgs("build/app.bin", "0x08000000", true)
		assert.Equal(t, []string{"--reset", "write", "build/app.bin", "0x08000000"}, got)
	})

	t.Run("NoReset", func(t *testing.T) {
		got := stFlashArgs("build/app.bin", "0x08000000", false)
		assert.Equal(t, []string{"write", "build/app.bin", "0x08000000"}, got)
	})
}

func TestDFUArgs(t *testing.T) {
	got := dfuArgs("app.bin", "0x08000000")
	assert.Equal(t, []string{"-a", "0", "-s", "0x08000000", "-D", "app.bin"}, got)
}

// A server-based method whose server executable is absent must fail with
// ToolMissing before spawning anything or waiting on a port.
func TestServerFlasherToolMissing(t *testing.T) {
	f := &serverFlasher{
		printer:     ui.NewPrinter("off"),
		opts:        Options{Host: "127.0.0.1", Port: 4242, GDB: "arm-none-eabi-gdb"},
		program:     "flint-test-no-such-server",
		installHint: "install it",
		waitTimeout: 0, // a port wait would fail instantly if it were reached
	}

	err := f.Flash(context.Background(), cmake.Artifact{ELF: "app.elf", Bin: "app.bin"})
	require.Error(t, err)
	assert.True(t, diag.IsKind(err, diag.ToolMissing))
	assert.Contains(t, err.Error(), "flint-test-no-such-server")
	assert.Contains(t, err.Error(), "install it")
}

func TestGDBServerFlasherDefaults(t *testing.T) {
	p := ui.NewPrinter("off")

	f := newGDBServerFlasher(p, Options{})
	assert.Equal(t, "ST-LINK_gdbserver", f.program)

	f = newGDBServerFlasher(p, Options{GDBServer: "/opt/st/gdbserver"})
	assert.Equal(t, "/opt/st/gdbserver", f.program)
}
