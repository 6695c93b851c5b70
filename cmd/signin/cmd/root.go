package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the signin command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign-in form demo server and tools",
		Long: `signin serves two sign-in forms, one validated by a hand-written
function and one by a declarative schema, and offers tools to exercise the
same validators from the terminal.

Available commands:
  serve      Start the HTTP server
  validate   Validate credentials with one of the form variants
  schema     Inspect the declarative sign-in schema
  version    Print the version number`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newSchemaCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
