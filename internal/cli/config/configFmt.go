package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/spf13/cobra"
)

var cmdConfigFmt = &cobra.Command{
	Use:   "fmt <...path>",
	Short: "Format configuration files",
	Long: `Format command line configuration files.

A basic HCL formatter. Rewrites the file in place.`,
	Example: `$ oasdoc config fmt ~/.oasdoc.hcl
$ oasdoc config fmt oasdoc.hcl myOtherConfig.hcl`,
	RunE: configFmt,
	Args: cobra.MinimumNArgs(1),
}

func init() {
	CmdConfig.AddCommand(cmdConfigFmt)
}

func configFmt(_ *cobra.Command, args []string) error {
	cl.State.Fmt.Print("Formatting config")

	for _, path := range args {
		cl.State.Fmt.Print(fmt.Sprintf("Processing file %q", path))
		content, err := os.ReadFile(path)
		if err != nil {
			cl.State.Fmt.PrintErr(fmt.Sprintf("could not open config file: %v", err))
			continue
		}

		result := hclwrite.Format(content)
		err = os.WriteFile(path, result, 0o644)
		if err != nil {
			cl.State.Fmt.PrintErr(fmt.Sprintf("could not write config file: %v", err))
			continue
		}

		cl.State.Fmt.PrintSuccess(fmt.Sprintf("Formatted file %q", path))
	}

	cl.State.Fmt.Finish()
	return nil
}
