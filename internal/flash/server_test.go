//go:build !windows

package flash

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/diag"
	"github.com/dosanma1/flint-cli/internal/run"
	"github.com/dosanma1/flint-cli/internal/ui"
)

func writeServerStub(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flint-test-server")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func processGone(pid int) bool {
	return syscall.Kill(pid, 0) != nil
}

// A spawned debug server must not outlive Flash, even when the port wait
// fails before the debugger client ever runs.
func TestServerFlasherTerminatesOnPortTimeout(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pid")
	stub := writeServerStub(t, "#!/bin/sh\necho $$ > "+pidFile+"\nexec sleep 30\n")

	f := &serverFlasher{
		printer:     ui.NewPrinter("off"),
		opts:        Options{Host: "127.0.0.1", Port: freePort(t), GDB: "arm-none-eabi-gdb"},
		program:     stub,
		installHint: "install it",
		waitTimeout: 300 * time.Millisecond,
	}

	err := f.Flash(context.Background(), cmake.Artifact{ELF: "app.elf", Bin: "app.bin"})
	require.Error(t, err)
	assert.True(t, diag.IsKind(err, diag.Timeout))

	raw, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	require.NoError(t, err)
	assert.True(t, processGone(pid), "debug server still running after Flash returned")
}

func TestTerminate(t *testing.T) {
	t.Run("GracefulWithinGrace", func(t *testing.T) {
		cmd, err := run.NewRunner("", ui.NewPrinter("off")).Start(context.Background(), "sleep", "30")
		require.NoError(t, err)
		pid := cmd.Process.Pid

		start := time.Now()
		terminate(cmd)

		assert.Less(t, time.Since(start), terminateGrace)
		assert.True(t, processGone(pid))
	})

	t.Run("ForceKillWhenTermIgnored", func(t *testing.T) {
		stub := writeServerStub(t, "#!/bin/sh\ntrap '' TERM\nwhile :; do sleep 1; done\n")

		cmd, err := run.NewRunner("", ui.NewPrinter("off")).Start(context.Background(), stub)
		require.NoError(t, err)
		pid := cmd.Process.Pid

		// Let the shell install its trap before the TERM arrives.
		time.Sleep(100 * time.Millisecond)

		start := time.Now()
		terminate(cmd)

		assert.GreaterOrEqual(t, time.Since(start), terminateGrace)
		assert.True(t, processGone(pid))
	})
}
