package cli

import (
	"context"
	"fmt"

	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/cli/format"
	"github.com/oasdoc/oasdoc/internal/openapi"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cmdValidate = &cobra.Command{
	Use:   "validate <...path>",
	Short: "Validate OpenAPI documents",
	Long: `Validate OpenAPI documents.

Each document is loaded, any file or URL references it makes are resolved, and the
whole thing is checked against the OpenAPI specification. Documents are processed in
the order given; one failing document does not stop the documents after it, but any
failure makes the command exit non-zero.`,
	Example: `$ oasdoc validate docs/api.yml
$ oasdoc validate docs/api.yml docs/admin.yml
$ oasdoc validate docs/*`,
	RunE: validate,
	Args: cobra.MinimumNArgs(1),
}

func init() {
	RootCmd.AddCommand(cmdValidate)
}

func validate(_ *cobra.Command, args []string) error {
	cl.State.Fmt.Print("Validating documents")

	ctx := context.Background()
	failed := 0

	for _, path := range args {
		cl.State.Fmt.Print(fmt.Sprintf("Processing document %q", path))

		outcome := openapi.Validate(ctx, path)
		if outcome.Valid {
			cl.State.Fmt.PrintSuccess(fmt.Sprintf("Document %q is valid!", path))
			continue
		}

		failed++
		printValidationReport(&outcome)
	}

	cl.State.Fmt.Finish()

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}

	return nil
}

var renderStylish = format.Stylish

// renderValidationReport builds the text for an invalid outcome, falling back to the
// plain reporter when the stylish one cannot render.
func renderValidationReport(outcome *openapi.Outcome) string {
	report, err := renderStylish(outcome)
	if err != nil {
		log.Debug().Err(err).Msg("could not render report; falling back to plain output")
		return format.Simple(outcome)
	}

	return report
}

// printValidationReport renders an invalid outcome to the terminal. Every command that
// validates a document routes failures through here so reporting behaves the same
// everywhere.
func printValidationReport(outcome *openapi.Outcome) {
	cl.State.Fmt.PrintErr(fmt.Sprintf("Document %q has errors:", outcome.Path))
	cl.State.Fmt.Println(renderValidationReport(outcome))
}
