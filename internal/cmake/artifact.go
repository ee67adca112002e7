package cmake

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dosanma1/flint-cli/internal/diag"
)

// Artifact is the pair of build outputs handed to the flash layer: the linked
// ELF image and its raw binary sibling.
type Artifact struct {
	ELF string
	Bin string
}

// DefaultObjcopy is the image conversion tool used unless OBJCOPY is set.
const DefaultObjcopy = "arm-none-eabi-objcopy"

// ObjcopyTool returns the image-to-binary converter, honoring the OBJCOPY
// environment override.
func ObjcopyTool() string {
	if v := os.Getenv("OBJCOPY"); v != "" {
		return v
	}
	return DefaultObjcopy
}

func objcopyArgs(elf, bin string) []string {
	return []string{"-O", "binary", elf, bin}
}

// binSibling derives the raw binary path next to an ELF image.
func binSibling(elf string) string {
	return strings.TrimSuffix(elf, filepath.Ext(elf)) + ".bin"
}

// PickELF resolves the executable image in buildDir. A preferred base name
// wins when the file exists; otherwise a sole *.elf is taken regardless of
// name; multiple candidates without a preferred match are ambiguous.
func PickELF(buildDir, preferred string) (string, error) {
	if preferred != "" {
		p := filepath.Join(buildDir, preferred+".elf")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	elfs, err := filepath.Glob(filepath.Join(buildDir, "*.elf"))
	if err != nil {
		return "", err
	}
	sort.Strings(elfs)

	switch {
	case len(elfs) == 1:
		return elfs[0], nil
	case len(elfs) > 1:
		names := make([]string, 0, 10)
		for i, e := range elfs {
			if i == 10 {
				break
			}
			names = append(names, filepath.Base(e))
		}
		return "", diag.New(diag.Ambiguous, "Multiple .elf files found in %s: %s", buildDir, strings.Join(names, ", ")).
			WithHint("Pass --artifact <name> to select one (without extension).")
	default:
		return "", diag.New(diag.NoArtifact, "No .elf produced in %s.", buildDir).
			WithHint("Tip: check your CMake target output or pass --artifact <name>.")
	}
}
