// Package cmake locates a CMake firmware project, extracts its declared name,
// and drives the configure/build/objcopy sequence through the external cmake
// and objcopy tools.
package cmake

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dosanma1/flint-cli/internal/diag"
)

// RootMarker is the file that identifies a repository's build root.
const RootMarker = "CMakeLists.txt"

// FindRepoRoot searches start and each of its ancestors for CMakeLists.txt
// and returns the first directory that contains it.
func FindRepoRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(dir, RootMarker)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", diag.New(diag.NotFound, "Could not find %s when searching from: %s", RootMarker, start)
}

// The parser is deliberately a narrow pattern matcher, not a CMake evaluator.
// It covers the patterns embedded templates actually use (CubeMX included):
// direct values and one level of ${VAR} indirection.
var (
	commentRe = regexp.MustCompile(`(?m)#.*$`)

	// set(VAR value) or set(VAR "value")
	setRe = regexp.MustCompile(`(?is)\bset\s*\(\s*([A-Za-z0-9_]+)\s+(.+?)\s*\)`)

	// project(name ...) or project(${VAR} ...)
	projectRe = regexp.MustCompile(`(?is)\bproject\s*\(\s*([^\s\)]+)`)

	varRefRe = regexp.MustCompile(`^\$\{([A-Za-z0-9_]+)\}$`)
)

const projectNameVar = "CMAKE_PROJECT_NAME"

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == s[len(s)-1] && (s[0] == '"' || s[0] == '\'') {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// ProjectName reads a CMakeLists.txt and extracts the declared project name.
func ProjectName(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := commentRe.ReplaceAllString(string(raw), "")

	// Collect simple set(VAR value) assignments. Only the first token of the
	// value expression counts, which skips CubeMX noise like CACHE/FORCE.
	vars := make(map[string]string)
	for _, m := range setRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		fields := strings.Fields(m[2])
		if len(fields) == 0 {
			continue
		}
		if token := stripQuotes(fields[0]); token != "" {
			vars[name] = token
		}
	}

	// An explicit CMAKE_PROJECT_NAME assignment wins over everything.
	if name, ok := vars[projectNameVar]; ok {
		return name, nil
	}

	if m := projectRe.FindStringSubmatch(text); m != nil {
		firstArg := stripQuotes(strings.TrimSpace(m[1]))
		if vm := varRefRe.FindStringSubmatch(firstArg); vm != nil {
			name := vm[1]
			if value, ok := vars[name]; ok {
				return value, nil
			}
			return "", diag.New(diag.ResolutionError,
				"Found project(%s ...) in %s, but %s wasn't set to a simple value.", firstArg, path, name).
				WithHint("Tip: add a line like: set(%s MyProjectName)\nOr pass --project MyProjectName.", name)
		}
		return firstArg, nil
	}

	return "", diag.New(diag.ParseError, "Couldn't parse project name from %s", path).
		WithHint("Expected either:\n" +
			"  - project(MyProject ...)\n" +
			"  - set(CMAKE_PROJECT_NAME MyProject) then project(${CMAKE_PROJECT_NAME})\n" +
			"Tip: you can override with --project <name>.")
}
