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

var cmdBundle = &cobra.Command{
	Use:   "bundle <path>",
	Short: "Bundle a multi-file OpenAPI document into one file",
	Long: `Bundle a multi-file OpenAPI document into one file.

The document is validated first; bundling never runs against a document that failed
validation. Every file and URL reference is then resolved and folded into the
document's own components section so the result can be published as one artifact.

The written document is JSON no matter how the output path is named; pass
--encoding yaml to opt into YAML.`,
	Example: `$ oasdoc bundle docs/api.yml -o bundled/api.json
$ oasdoc bundle docs/api.yml -o bundled/api.yaml -e yaml`,
	RunE: bundle,
	Args: cobra.ExactArgs(1),
}

func init() {
	cmdBundle.Flags().StringP("output", "o", "", "path to write the bundled document to (required)")
	cmdBundle.Flags().StringP("encoding", "e", "json", "output encoding; accepted values are 'json', 'yaml'")
	RootCmd.AddCommand(cmdBundle)
}

func bundle(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Checked by hand instead of cobra's required flag machinery so the missing flag
	// still prints usage; by the time cobra runs that check we have already silenced it.
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

	ctx := context.Background()

	cl.State.Fmt.Print(fmt.Sprintf("Validating document %q", path))

	outcome := openapi.Validate(ctx, path)
	if !outcome.Valid {
		printValidationReport(&outcome)
		cl.State.Fmt.Finish()
		return outcome.Err()
	}

	cl.State.Fmt.Print(fmt.Sprintf("Bundling document %q", path))

	doc, err := openapi.Bundle(ctx, path)
	if err != nil {
		cl.State.Fmt.PrintErr(fmt.Sprintf("could not bundle document: %v", err))
		cl.State.Fmt.Finish()
		return err
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
		cl.State.Fmt.PrintErr(fmt.Sprintf("could not write bundled document: %v", err))
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.PrintSuccess(fmt.Sprintf("Bundled %q into %q (%s)", path, output,
		humanize.Bytes(uint64(len(contents)))))
	cl.State.Fmt.Finish()
	return nil
}

// resolveEncoding validates the requested output encoding. Written documents are JSON
// unless --encoding explicitly selects YAML; the output path's extension plays no part.
func resolveEncoding(cmd *cobra.Command) (string, error) {
	encoding, _ := cmd.Flags().GetString("encoding")
	if encoding == "" {
		encoding = "json"
	}

	if encoding != "json" && encoding != "yaml" {
		return "", fmt.Errorf("unknown encoding %q; accepted values are 'json', 'yaml'", encoding)
	}

	return encoding, nil
}
