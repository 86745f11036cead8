// Termform fills in terminal forms described by YAML definition files.
//
// A definition lists fields (text inputs, selects, checkboxes) and blocks
// (address, contact, date range) that expand into groups of fields. The form
// runs as a full-screen TUI, or as line-by-line prompts with --plain, and the
// submitted values are written to a flat JSON object.
//
// Usage:
//
//	termform [definition.yaml] [flags]
//	termform [command] [flags]
//
// See 'termform --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/termform/internal/logging"
	"github.com/muurk/termform/internal/tui"
	"github.com/muurk/termform/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termform [definition.yaml]",
	Short: "Terminal form filler",
	Long: `Fill in a form in the terminal and save the answers as JSON.

Forms are described by YAML definition files. Fields are edited in a
full-screen interface: Tab and Shift+Tab move between fields, Space
toggles checkboxes and opens dropdowns, Enter on Submit validates and
saves, Esc cancels.

Passing a definition file is the same as 'termform run <file>'.

Project home: https://` + tui.GitHubURL,
	Version: version.Full(),
	Example: `  # Fill in a form
  termform ticket.yaml

  # Try the built-in shipping form
  termform demo

  # Check a definition without running it
  termform check ticket.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runRun(cmd, args)
	},
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
		info := version.Get()
		fmt.Printf("termform %s (commit: %s)\n", info.Version, info.Commit)
		fmt.Printf("  %s %s\n", info.GoVersion, info.Platform)
	},
}
