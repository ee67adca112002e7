package cmd

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/dosanma1/flint-cli/internal/cmake"
	"github.com/dosanma1/flint-cli/internal/config"
	"github.com/dosanma1/flint-cli/internal/ui"
)

//go:embed schemas/flint-config.v1.schema.json
var schemaFS embed.FS

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the .flint.yaml configuration",
	Long: `Validates the repository's .flint.yaml against its JSON Schema.
This catches typos and out-of-range values before they surprise a build.`,
	Args: cobra.NoArgs,
	RunE: runValidateCmd,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(flagSymbols)

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repoRoot, err := cmake.FindRepoRoot(cwd)
	if err != nil {
		return err
	}

	path := config.Path(repoRoot)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		printer.Sayf(ui.Info, "No %s found at %s; defaults apply.", config.FileName, repoRoot)
		return nil
	}
	if err != nil {
		return err
	}

	// gojsonschema speaks JSON, so the YAML document is round-tripped first.
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", config.FileName, err)
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	schemaBytes, err := schemaFS.ReadFile("schemas/flint-config.v1.schema.json")
	if err != nil {
		return fmt.Errorf("failed to load JSON schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(docJSON),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			printer.Sayf(ui.Err, "%s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("%s is invalid", config.FileName)
	}

	printer.Sayf(ui.OK, "%s is valid", path)
	return nil
}
