package config

import (
	"reflect"
	"strings"

	"github.com/fatih/structs"
)

// GetCLIEnvVars returns the full list of environment variables the command line
// understands, one per configuration field.
func GetCLIEnvVars() []string {
	fields := structs.Fields(CLI{})
	return getEnvVarsFromStruct("OASDOC_", fields)
}

func getEnvVarsFromStruct(prefix string, fields []*structs.Field) []string {
	output := []string{}

	for _, field := range fields {
		if field.Kind() == reflect.Pointer || field.Kind() == reflect.Struct {
			output = append(output, getEnvVarsFromStruct(prefix, structs.Fields(field.Value()))...)
			continue
		}

		output = append(output, prefix+strings.ToUpper(field.Tag("koanf")))
	}

	return output
}
