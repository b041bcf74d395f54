package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/fsutil"
	"github.com/oasdoc/oasdoc/internal/openapi"
	"github.com/spf13/cobra"
)

var cmdConvert = &cobra.Command{
	Use:   "convert <path>",
	Short: "Upgrade a Swagger 2.0 document to OpenAPI 3",
	Long: `Upgrade a Swagger 2.0 document to OpenAPI 3.

The upgraded document must pass OpenAPI validation before anything is written; a legacy
document that converts into something broken fails the command instead of producing an
artifact that every later step would reject.

Output handling works like bundle: JSON unless --encoding selects yaml.`,
	Example: `$ oasdoc convert legacy/api.yml -o docs/api.yml
$ oasdoc convert legacy/api.json -o docs/api.json`,
	RunE: convert,
	Args: cobra.ExactArgs(1),
}

func init() {
	cmdConvert.Flags().StringP("output", "o", "", "path to write the upgraded document to (required)")
	cmdConvert.Flags().StringP("encoding", "e", "json", "output encoding; accepted values are 'json', 'yaml'")
	RootCmd.AddCommand(cmdConvert)
}

func convert(cmd *cobra.Command, args []string) error {
	path := args[0]

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		cl.State.Fmt.PrintErr(`required flag "output" not set`)
		cl.State.Fmt.Finish()
		_ = cmd.Usage()
		return fmt.Errorf("required flag %q not set", "output")
	}

	encoding, err := resolveEncoding(cmd)
	if err != nil {
		cl.State.Fmt.PrintErr(err)
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.Print(fmt.Sprintf("Converting document %q", path))

	doc, err := openapi.ConvertV2(path)
	if err != nil {
		cl.State.Fmt.PrintErr(err)
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.Print("Validating converted document")

	outcome := openapi.ValidateDocument(context.Background(), path, doc)
	if !outcome.Valid {
		printValidationReport(&outcome)
		cl.State.Fmt.Finish()
		return outcome.Err()
	}

	var contents []byte
	if encoding == "yaml" {
		contents, err = openapi.EncodeYAML(doc)
	} else {
		contents, err = openapi.EncodeJSON(doc)
	}
	if err != nil {
		cl.State.Fmt.PrintErr(err)
		cl.State.Fmt.Finish()
		return err
	}

	err = fsutil.WriteFile(output, contents)
	if err != nil {
		cl.State.Fmt.PrintErr(fmt.Sprintf("could not write upgraded document: %v", err))
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.PrintSuccess(fmt.Sprintf("Converted %q into %q (%s)", path, output,
		humanize.Bytes(uint64(len(contents)))))
	cl.State.Fmt.Finish()
	return nil
}
