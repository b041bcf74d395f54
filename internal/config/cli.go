// Package config defines the command line's configuration and the machinery for
// assembling it from its three sources: config file, environment, and flags.
package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// CLI carries every user tunable setting. The hcl tags exist so commands that persist
// settings can write the struct back out as a config file.
type CLI struct {
	Detail   bool   `koanf:"detail" hcl:"detail,optional"`
	Format   string `koanf:"format" hcl:"format,optional"`
	Host     string `koanf:"host" hcl:"host,optional"`
	LogLevel string `koanf:"log_level" hcl:"log_level,optional"`
	NoColor  bool   `koanf:"no_color" hcl:"no_color,optional"`
}

// DefaultCLIConfig returns a pre-populated configuration struct that is used as the base for super imposing user configuration
// settings.
func DefaultCLIConfig() *CLI {
	return &CLI{
		Format:   "pretty",
		Host:     "localhost:8080",
		LogLevel: "disabled",
	}
}

// FromBytes parses a single config file's raw contents into the struct. Unlike
// InitCLIConfig it consults nothing else, which makes it useful for checking one
// specific file.
func (c *CLI) FromBytes(content []byte, filename string) error {
	err := hclsimple.Decode(filename, content, nil, c)
	if err != nil {
		return fmt.Errorf("could not parse file: %w", err)
	}

	return nil
}

// Validate checks that settings which only accept certain values got one of them.
// All violations are returned together so the user can fix their config in one pass.
func (c *CLI) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.In("pretty", "json", "silent")),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error", "fatal", "panic", "disabled")),
	)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validation.Errors)
	if !ok {
		return err
	}

	var result error
	for field, fieldErr := range validationErrors {
		result = multierror.Append(result, fmt.Errorf("%s: %v", field, fieldErr))
	}

	return result
}

// Get configuration for command line.
// This involves correctly finding and ordering different possible paths for the configuration file:
//
//  1. The function is intended to be called with paths gleaned from the -config flag in the cli.
//  2. If the user does not use the -config path of the path does not exist,
//     then we default to a few hard coded config path locations.
//  3. Then try to see if the user has set an envvar for the config file, which overrides
//     all previous config file paths.
//  4. Finally, whatever configuration file path is found first is the processed.
//
// Whether or not we use the configuration file we then search the environment for all environment variables:
//   - Environment variables are loaded after the config file and therefore overwrite any conflicting keys.
//   - All configuration that goes into a configuration file can also be used as an environment variable.
func InitCLIConfig(flagPath string, loadDefaults bool) (*CLI, error) {
	var config *CLI

	// First we initiate the default values for the config.
	if loadDefaults {
		config = DefaultCLIConfig()
	}

	homeDir, _ := os.UserHomeDir()

	path := searchFilePaths(possibleConfigPaths(homeDir, flagPath)...)

	// envVars top all other entries so if its not empty we just insert it over the current path
	// regardless of if we found one.
	envPath := os.Getenv("OASDOC_CLI_CONFIG_PATH")
	if envPath != "" {
		path = envPath
	}

	configParser := koanf.New(".")

	if path != "" {
		err := configParser.Load(file.Provider(path), hcl.Parser(true))
		if err != nil {
			return nil, err
		}
	}

	err := configParser.Load(env.Provider("OASDOC_", "__", func(s string) string {
		newStr := strings.TrimPrefix(s, "OASDOC_")
		newStr = strings.ToLower(newStr)
		return newStr
	}), nil)
	if err != nil {
		return nil, err
	}

	err = configParser.Unmarshal("", &config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// searchFilePaths returns the first path in the list that exists and is a regular file.
func searchFilePaths(paths ...string) string {
	for _, path := range paths {
		if path == "" {
			continue
		}

		stat, err := os.Stat(path)
		if err != nil {
			continue
		}

		if stat.IsDir() {
			continue
		}

		return path
	}

	return ""
}
