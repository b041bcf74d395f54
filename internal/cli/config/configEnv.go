package config

import (
	"strings"

	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/config"
	"github.com/spf13/cobra"
)

var cmdConfigEnv = &cobra.Command{
	Use:   "env",
	Short: "Print the environment variables the command line reads",
	Long: `Print the list of environment variables the command line looks for on startup.

All configuration set by environment variable overrides default and config file read
configuration.`,
	Example: `$ oasdoc config env`,
	RunE:    configEnv,
}

func init() {
	CmdConfig.AddCommand(cmdConfigEnv)
}

func configEnv(_ *cobra.Command, _ []string) error {
	cl.State.Fmt.Println(strings.Join(config.GetCLIEnvVars(), "\n"))
	cl.State.Fmt.Finish()
	return nil
}
