package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			if Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "hwprofile %s (%s)\n", Version, Commit)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hwprofile %s\n", Version)
		},
	}
}
