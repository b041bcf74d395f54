package cli

import (
	"context"
	"fmt"

	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/openapi"
	"github.com/spf13/cobra"
)

var cmdUpload = &cobra.Command{
	Use:   "upload <path>",
	Short: "Publish a document to the documentation host",
	Long: `Publish a document to the documentation host.

The document is validated first and nothing is ever sent for a document that failed
validation.

The publishing leg itself has not been implemented yet. For now the command stops after
validation and says so plainly rather than pretending the document went anywhere.`,
	Example: `$ oasdoc upload docs/api.yml
$ oasdoc upload docs/api.yml --host docs.example.com`,
	RunE: upload,
	Args: cobra.ExactArgs(1),
}

func init() {
	RootCmd.AddCommand(cmdUpload)
}

func upload(_ *cobra.Command, args []string) error {
	path := args[0]

	cl.State.Fmt.Print(fmt.Sprintf("Validating document %q", path))

	outcome := openapi.Validate(context.Background(), path)
	if !outcome.Valid {
		printValidationReport(&outcome)
		cl.State.Fmt.Finish()
		return outcome.Err()
	}

	cl.State.Fmt.PrintSuccess(fmt.Sprintf("Document %q is valid!", path))
	cl.State.Fmt.Println(fmt.Sprintf("Upload to %q is not implemented yet; nothing was sent.",
		cl.State.Config.Host))
	cl.State.Fmt.Finish()
	return nil
}
