package config

import (
	"fmt"

	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/spf13/cobra"
)

var cmdConfigSetHost = &cobra.Command{
	Use:     "set-host <host>",
	Short:   "Set the documentation host",
	Example: `$ oasdoc config set-host docs.example.com`,
	RunE:    configSetHost,
	Args:    cobra.ExactArgs(1),
}

func init() {
	CmdConfig.AddCommand(cmdConfigSetHost)
}

func configSetHost(_ *cobra.Command, args []string) error {
	host := args[0]

	// In order to change the configuration we must update the in-memory
	// snapshot of the user's CLI configuration and then write it back
	// out to a file.
	cl.State.Config.Host = host
	err := cl.State.WriteConfig()
	if err != nil {
		cl.State.Fmt.PrintErr(err)
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.PrintSuccess(fmt.Sprintf("Documentation host set to %q", host))
	cl.State.Fmt.Finish()
	return nil
}
