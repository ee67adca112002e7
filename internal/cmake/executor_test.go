package cmake

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosanma1/flint-cli/internal/diag"
	"github.com/dosanma1/flint-cli/internal/ui"
)

// stubTools puts a fake cmake and objcopy on PATH. The cmake stub drops the
// given ELF names into the build dir on its --build invocation; the objcopy
// stub records its argv into the returned file.
func stubTools(t *testing.T, elfNames ...string) (argvFile string) {
	t.Helper()
	bin := t.TempDir()
	argvFile = filepath.Join(t.TempDir(), "objcopy-argv")

	var b strings.Builder
	b.WriteString("#!/bin/sh\nif [ \"$1\" = \"--build\" ]; then\n")
	for _, name := range elfNames {
		b.WriteString("  : > \"$2/" + name + ".elf\"\n")
	}
	b.WriteString("  :\nfi\nexit 0\n")
	require.NoError(t, os.WriteFile(filepath.Join(bin, "cmake"), []byte(b.String()), 0o755))

	objcopy := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"" + argvFile + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "flint-test-objcopy"), []byte(objcopy), 0o755))

	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("OBJCOPY", "flint-test-objcopy")
	return argvFile
}

func recordedArgv(t *testing.T, argvFile string) []string {
	t.Helper()
	raw, err := os.ReadFile(argvFile)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(raw)), "\n")
}

func TestConfigureAndBuild(t *testing.T) {
	t.Run("ProjectNameYieldsMatchingPair", func(t *testing.T) {
		argvFile := stubTools(t, "Valve_Board26")

		cfg := Config{
			RepoRoot:    t.TempDir(),
			BuildType:   Debug,
			Generator:   "Ninja",
			BuildSubdir: "Debug_Script",
			ProjectName: "Valve_Board26",
		}

		art, err := NewExecutor(cfg, ui.NewPrinter("off")).ConfigureAndBuild(context.Background())
		require.NoError(t, err)

		buildDir := cfg.BuildDir()
		assert.Equal(t, filepath.Join(buildDir, "Valve_Board26.elf"), art.ELF)
		assert.Equal(t, filepath.Join(buildDir, "Valve_Board26.bin"), art.Bin)
		assert.Equal(t, []string{"-O", "binary", art.ELF, art.Bin}, recordedArgv(t, argvFile))

		// A successful build leaves its manifest behind.
		_, err = os.Stat(filepath.Join(buildDir, ManifestName))
		assert.NoError(t, err)
	})

	t.Run("ArtifactOverrideBeatsProjectName", func(t *testing.T) {
		argvFile := stubTools(t, "Valve_Board26", "Custom")

		cfg := Config{
			RepoRoot:    t.TempDir(),
			BuildType:   Release,
			Generator:   "Ninja",
			BuildSubdir: "Release_Script",
			ProjectName: "Valve_Board26",
			Artifact:    "Custom",
		}

		art, err := NewExecutor(cfg, ui.NewPrinter("off")).ConfigureAndBuild(context.Background())
		require.NoError(t, err)

		buildDir := cfg.BuildDir()
		assert.Equal(t, filepath.Join(buildDir, "Custom.elf"), art.ELF)
		assert.Equal(t, filepath.Join(buildDir, "Custom.bin"), art.Bin)
		assert.Equal(t, []string{"-O", "binary", art.ELF, art.Bin}, recordedArgv(t, argvFile))
	})

	t.Run("BuildProducingNothingIsNoArtifact", func(t *testing.T) {
		stubTools(t)

		cfg := Config{
			RepoRoot:    t.TempDir(),
			BuildType:   Debug,
			Generator:   "Ninja",
			BuildSubdir: "Debug_Script",
			ProjectName: "App",
		}

		_, err := NewExecutor(cfg, ui.NewPrinter("off")).ConfigureAndBuild(context.Background())
		require.Error(t, err)
		assert.True(t, diag.IsKind(err, diag.NoArtifact))
	})
}
