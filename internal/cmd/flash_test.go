package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosanma1/flint-cli/internal/config"
	"github.com/dosanma1/flint-cli/internal/flash"
)

func resetFlashFlags(t *testing.T) {
	t.Helper()
	flashMethod = ""
	flashAddr = ""
	flashNoReset = false
	flashHost = ""
	flashPort = 0
	flashGDB = ""
	flashSTUtilArgs = ""
	flashGDBServer = ""
	flashGDBServerArgs = ""
	flashGDBCmds = nil
	t.Cleanup(func() {
		flashMethod = ""
		flashAddr = ""
		flashNoReset = false
		flashHost = ""
		flashPort = 0
		flashGDB = ""
		flashSTUtilArgs = ""
		flashGDBServer = ""
		flashGDBServerArgs = ""
		flashGDBCmds = nil
	})
}

func TestFlashOptionsDefaults(t *testing.T) {
	resetFlashFlags(t)

	opts, err := flashOptions(flash.MethodSTFlash, config.FlashConfig{})
	require.NoError(t, err)

	assert.Equal(t, "0x08000000", opts.Addr)
	assert.True(t, opts.Reset)
	assert.Equal(t, "127.0.0.1", opts.Host)
	assert.Equal(t, flash.DefaultSTUtilPort, opts.Port)
	assert.Equal(t, "arm-none-eabi-gdb", opts.GDB)
	assert.Empty(t, opts.ServerArgs)
}

func TestFlashOptionsGDBServerDefaultPort(t *testing.T) {
	resetFlashFlags(t)

	opts, err := flashOptions(flash.MethodGDBServer, config.FlashConfig{})
	require.NoError(t, err)
	assert.Equal(t, flash.DefaultGDBServerPort, opts.Port)
}

func TestFlashOptionsPrecedence(t *testing.T) {
	resetFlashFlags(t)
	flashPort = 5000
	flashAddr = "0x08004000"
	flashNoReset = true

	fileCfg := config.FlashConfig{Addr: "0x08008000", Port: 4321, Host: "192.168.1.5"}

	opts, err := flashOptions(flash.MethodSTUtil, fileCfg)
	require.NoError(t, err)

	// Flags beat file values; file values beat built-in defaults.
	assert.Equal(t, "0x08004000", opts.Addr)
	assert.Equal(t, 5000, opts.Port)
	assert.Equal(t, "192.168.1.5", opts.Host)
	assert.False(t, opts.Reset)
}

func TestFlashOptionsServerArgs(t *testing.T) {
	t.Run("STUtilArgsTokenized", func(t *testing.T) {
		resetFlashFlags(t)
		flashSTUtilArgs = `-p 4500 --serial "1234 5678"`

		opts, err := flashOptions(flash.MethodSTUtil, config.FlashConfig{})
		require.NoError(t, err)
		assert.Equal(t, []string{"-p", "4500", "--serial", "1234 5678"}, opts.ServerArgs)
	})

	t.Run("GDBServerArgsUsedForGDBServerMethod", func(t *testing.T) {
		resetFlashFlags(t)
		flashSTUtilArgs = "-p 1111"
		flashGDBServerArgs = "-cp /opt/st"

		opts, err := flashOptions(flash.MethodGDBServer, config.FlashConfig{})
		require.NoError(t, err)
		assert.Equal(t, []string{"-cp", "/opt/st"}, opts.ServerArgs)
	})

	t.Run("UnbalancedQuotesRejected", func(t *testing.T) {
		resetFlashFlags(t)
		flashSTUtilArgs = `-p "4500`

		_, err := flashOptions(flash.MethodSTUtil, config.FlashConfig{})
		assert.Error(t, err)
	})
}

func TestPick(t *testing.T) {
	assert.Equal(t, "a", pick("a", "b", "c"))
	assert.Equal(t, "b", pick("", "b", "c"))
	assert.Equal(t, "", pick("", "", ""))
}
