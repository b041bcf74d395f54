package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/config"
	"github.com/spf13/cobra"
)

var cmdConfigValidate = &cobra.Command{
	Use:   "validate <...path>",
	Short: "Validate configuration files",
	Example: `$ oasdoc config validate ~/.oasdoc.hcl
$ oasdoc config validate oasdoc.hcl myOtherConfig.hcl`,
	RunE: configValidate,
	Args: cobra.MinimumNArgs(1),
}

func init() {
	CmdConfig.AddCommand(cmdConfigValidate)
}

func configValidate(_ *cobra.Command, args []string) error {
	cl.State.Fmt.Print("Validating configuration")

	for _, path := range args {
		cl.State.Fmt.Print(fmt.Sprintf("Processing file %q", path))

		content, err := os.ReadFile(path)
		if err != nil {
			cl.State.Fmt.PrintErr(fmt.Sprintf("could not open config file: %v", err))
			continue
		}

		fileConfig := config.CLI{}
		err = fileConfig.FromBytes(content, path)
		if err != nil {
			cl.State.Fmt.PrintErr(err)
			continue
		}

		err = fileConfig.Validate()
		if err != nil {
			if merr, ok := err.(*multierror.Error); ok {
				cl.State.Fmt.PrintErr(fmt.Sprintf("Config %q has errors:", path))
				for _, err := range merr.Errors {
					cl.State.Fmt.PrintErr("  " + err.Error())
				}
			}
			continue
		}

		cl.State.Fmt.PrintSuccess(fmt.Sprintf("Config %q is valid!", path))
	}

	cl.State.Fmt.Finish()
	return nil
}
