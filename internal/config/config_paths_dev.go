//go:build dev

package config

import "fmt"

// The dev build reads its own config file so development settings never clobber the
// real ones.
func possibleConfigPaths(homeDir, flagPath string) []string {
	return []string{
		flagPath,
		fmt.Sprintf("%s/%s", homeDir, ".oasdoc_dev.hcl"),
		fmt.Sprintf("%s/%s/%s", homeDir, ".config", "oasdoc_dev.hcl"),
	}
}
