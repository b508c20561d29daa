package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vito",
	Short: "A powerful CLI tool for managing your projects",
	Long: `vito is a feature-rich command-line interface tool designed to help you
manage your projects more efficiently. It can inspect pending Gnosis Safe
transactions held in on-chain SafeTxPool contracts across several EVM networks.

Unrecognized flags or commands are errors: vito prints the problem and the
usage text, then exits non-zero.`,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")
	rootCmd.Flags().BoolP("version", "V", false, "Print the version and exit")
}

// terminalAction is what an invocation resolves to before any command runs.
type terminalAction int

const (
	actionDispatch terminalAction = iota
	actionHelp
	actionVersion
)

// resolveTerminalFlag scans the invocation left to right and reports which of
// the two terminal flags, if any, appears first. Cobra always resolves help
// before version regardless of argument order, so the first-flag-wins policy
// has to be applied before it parses anything.
func resolveTerminalFlag(args []string) terminalAction {
	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			return actionHelp
		case "--version", "-V":
			return actionVersion
		case "--":
			return actionDispatch
		}
	}
	return actionDispatch
}

// Execute runs the root command. Called from main.
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vito {{.Version}}\n")

	if resolveTerminalFlag(os.Args[1:]) == actionVersion {
		fmt.Printf("vito %s\n", version)
		return
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
