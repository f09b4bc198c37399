package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func newOffsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offset",
		Short: "Show the local time zone offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%gh (%dms)\n", datetime.TimezoneOffset(), datetime.TimezoneOffsetTicks())
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "datekit", Version)
			return err
		},
	}
}
