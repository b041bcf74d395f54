// Package cl contains global variables used across the cli package. Yeah its probably a bad pattern
// but it works and removes us from dependency hell.
package cl

import (
	"fmt"
	"log"
	"os"

	"github.com/clintjedwards/polyfmt"
	"github.com/fatih/color"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/oasdoc/oasdoc/internal/config"
	"github.com/spf13/cobra"
)

// Harness is a structure for values that all commands need access to.
type Harness struct {
	Fmt            polyfmt.Formatter
	Config         *config.CLI
	ConfigFilePath string
}

// State holds values that aid in the lifetime of a command.
var State *Harness

// Init harness for command line functions, used to provide different functionality during the life of a command line run.
func InitState(cmd *cobra.Command) {
	// Including these in the pre run hook instead of in the enclosing/parent command definition
	// allows cobra to still print errors and usage for its own cli verifications, but
	// ignore our errors.
	cmd.SilenceUsage = true  // Don't print the usage if we get an upstream error
	cmd.SilenceErrors = true // Let us handle error printing ourselves

	// Now we need to provide the command line with some state which we use to display the spinner
	// and also make sure the command line inherits the proper variable chain(config file -> envvar -> flags)
	State = &Harness{}

	configPath, _ := cmd.Flags().GetString("config")
	State.NewConfig(configPath)

	// Initiate the formatter(this controls the command line output)
	format, _ := cmd.Flags().GetString("format")
	if format != "" {
		State.Config.Format = format
	}

	overlayGlobalFlags(cmd)

	err := State.Config.Validate()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	State.NewFormatter()
}

// Flags are the last possible way to provide variables to the command line. For global variables we allow the user
// to specify them through envvars and configuration. Because of this we need to take whatever we have in the config
// from previous steps that retrieve them from those locations and then if the user has passed in a flag overwrite
// whatever those variables are.
func overlayGlobalFlags(cmd *cobra.Command) {
	// Now we include all other global flags into the config. Flags are always highest on the variable chain.
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		color.NoColor = true // turn off color globally
		State.Config.NoColor = noColor
	}

	detail, _ := cmd.Flags().GetBool("detail")
	if detail {
		State.Config.Detail = detail
	}

	host, _ := cmd.Flags().GetString("host")
	if host != "" {
		State.Config.Host = host
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	if logLevel != "" {
		State.Config.LogLevel = logLevel
	}
}

func (s *Harness) NewFormatter() {
	clifmt, err := polyfmt.NewFormatter(polyfmt.Mode(s.Config.Format), polyfmt.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	s.Fmt = clifmt
}

func (s *Harness) NewConfig(configPath string) {
	config, err := config.InitCLIConfig(configPath, true)
	if err != nil {
		log.Fatal(err)
	}

	s.Config = config
	s.ConfigFilePath = configPath
}

// WriteConfig takes the current representation of config and writes it to the file.
func (s *Harness) WriteConfig() error {
	if s.ConfigFilePath == "" {
		homeDir, _ := os.UserHomeDir()
		s.ConfigFilePath = fmt.Sprintf("%s/%s", homeDir, ".oasdoc.hcl")
	}

	f := hclwrite.NewEmptyFile()

	gohcl.EncodeIntoBody(s.Config, f.Body())

	err := os.WriteFile(s.ConfigFilePath, f.Bytes(), 0o644)
	if err != nil {
		return err
	}

	return nil
}
