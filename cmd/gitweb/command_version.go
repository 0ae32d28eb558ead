package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/gitweb/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gitweb version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return version.Print(cmd.OutOrStdout())
		},
	}
}
