package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clean takes the --debug/--release pair but not the build-only
// --no-telemetry toggle; the build-capable commands take all three.
func TestModeFlagRegistration(t *testing.T) {
	assert.NotNil(t, cleanCmd.Flags().Lookup("debug"))
	assert.NotNil(t, cleanCmd.Flags().Lookup("release"))
	assert.Nil(t, cleanCmd.Flags().Lookup("no-telemetry"))

	for _, c := range []string{"build", "flash", "watch"} {
		cmd, _, err := rootCmd.Find([]string{c})
		assert.NoError(t, err)
		assert.NotNil(t, cmd.Flags().Lookup("debug"), c)
		assert.NotNil(t, cmd.Flags().Lookup("release"), c)
		assert.NotNil(t, cmd.Flags().Lookup("no-telemetry"), c)
	}
}
