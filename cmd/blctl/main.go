// Blctl is a layout utility for BlUSB keyboard controllers.
//
// It compiles human-editable layout files into the binary blob the
// controller firmware consumes, pretty-prints layouts for inspection, and
// flashes them to the keyboard over its serial configuration channel.
//
// Usage:
//
//	blctl [command] [flags]
//
// See 'blctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openblusb/blctl/internal/logging"
	"github.com/openblusb/blctl/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blctl",
	Short: "BlUSB Keyboard Layout Utility",
	Long: `A utility for working with BlUSB keyboard controller layouts.

Compiles plain-text layout files (8x20 matrix, up to 6 layers of 16-bit
key codes) into the controller's binary format, validates and pretty-prints
them, and reads or writes layouts over the keyboard's serial port.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blctl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
