package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlinput/internal/language"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages offered when adding a value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := ctx.catalog().Options()
			rows := make([][]string, 0, len(options))
			for _, opt := range options {
				rows = append(rows, []string{language.Abbreviation(opt.Code), opt.Name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Code", "Language"}, rows))
			return nil
		},
	}
}
