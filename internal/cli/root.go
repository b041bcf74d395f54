// Package cli controls the main user entry point into the application. Each document
// chore gets its own top level command; settings management lives under the config
// subcommand.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/cli/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var appVersion = "0.0.dev_000000"

// RootCmd is the base of the cli
var RootCmd = &cobra.Command{
	Use:   "oasdoc",
	Short: "oasdoc keeps OpenAPI documentation healthy.",
	Long: `oasdoc keeps OpenAPI documentation healthy.

It wraps the day to day chores of maintaining API documentation: checking that documents
actually follow the OpenAPI specification, flattening multi-file documents into a single
publishable artifact, upgrading older documents, and pushing the results to a
documentation host.

Read more at https://github.com/oasdoc/oasdoc
`,
	Version: " ", // We leave this added but empty so that the rootcmd will supply the -v flag
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cl.InitState(cmd)
		setupLogging(cl.State.Config.LogLevel)
	},
	RunE: rootUsage,
}

// rootUsage only runs when no subcommand was given. That is a usage error, not a help
// request: usage goes to the error stream and the process exits non-zero.
func rootUsage(cmd *cobra.Command, _ []string) error {
	cl.State.Fmt.PrintErr("no command provided")
	cl.State.Fmt.Finish()
	_ = cmd.Usage()
	return fmt.Errorf("no command provided")
}

func init() {
	RootCmd.SetVersionTemplate(humanizeVersion(appVersion))
	RootCmd.AddCommand(config.CmdConfig)

	RootCmd.PersistentFlags().String("config", "", "configuration file path")
	RootCmd.PersistentFlags().Bool("detail", false, "show extra detail for some commands (ex. Exact time instead of humanized)")
	RootCmd.PersistentFlags().String("format", "", "output format; accepted values are 'pretty', 'json', 'silent'")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable color output")
	RootCmd.PersistentFlags().String("host", "", "specify the URL of the documentation host to publish to")
	RootCmd.PersistentFlags().String("log-level", "", "log level; accepted values are 'debug', 'info', 'warn', 'error', 'fatal', 'panic', 'disabled'")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogging(loglevel string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(parseLogLevel(loglevel))
}

func parseLogLevel(loglevel string) zerolog.Level {
	switch loglevel {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		log.Error().Msgf("loglevel %s not recognized; defaulting to disabled", loglevel)
		return zerolog.Disabled
	}
}

func humanizeVersion(version string) string {
	semver, hash, err := strings.Cut(version, "_")
	if !err {
		return ""
	}
	return fmt.Sprintf("oasdoc %s [%s]\n", semver, hash)
}
