package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/visamarker/internal/domain"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted nationalities, destinations and purposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, group := range []struct {
				title  string
				values []string
			}{
				{"Nationalities", domain.Countries()},
				{"Destinations", domain.Destinations()},
				{"Purposes", domain.Purposes()},
			} {
				if _, err := fmt.Fprintf(out, "%s:\n  %s\n\n", group.title, strings.Join(group.values, "\n  ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
