package cmd

import (
	"fmt"
	"os"

	"github.com/chtools/blocksmith/pkg/config"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Resolve the active suite configuration, either from the file named by the
// persistent --config flag or, failing that, the built-in defaults.
func getConfig(cmd *cobra.Command) *config.Config {
	filename := GetString(cmd, "config")
	if filename == "" {
		return config.Default()
	}
	// Load settings from the given file
	cfg, err := config.Load(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return cfg
}
