package config

import (
	"fmt"
	"os"

	_ "embed"

	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/spf13/cobra"
)

var cmdConfigInit = &cobra.Command{
	Use:   "init",
	Short: "Create example config file",
	Long: `Create an example command line configuration file.

This file can be used as an example starting point and be customized further. Place it
at ~/.oasdoc.hcl or ~/.config/oasdoc.hcl to have it picked up automatically.

The default filename is oasdoc.hcl, but can be renamed via flags.`,
	Example: `$ oasdoc config init
$ oasdoc config init -f myConfig.hcl`,
	RunE: initConfig,
}

//go:embed exampleConfig.hcl
var content string

func init() {
	cmdConfigInit.Flags().StringP("filepath", "f", "./oasdoc.hcl", "path to file")
	CmdConfig.AddCommand(cmdConfigInit)
}

func initConfig(cmd *cobra.Command, _ []string) error {
	filepath, _ := cmd.Flags().GetString("filepath")

	cl.State.Fmt.Print("Creating config file")

	err := createConfigFile(filepath)
	if err != nil {
		cl.State.Fmt.PrintErr(fmt.Sprintf("could not create config file: %v", err))
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.PrintSuccess(fmt.Sprintf("Created config file: %s", filepath))
	cl.State.Fmt.Finish()
	return nil
}

func createConfigFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	if err != nil {
		return err
	}

	return nil
}
