package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mlinput/internal/editor"
	"mlinput/internal/logging"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var defaultLanguage string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a record document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def := strings.TrimSpace(defaultLanguage)
			if def == "" {
				def = ctx.configValue().Record.DefaultLanguage
			}
			store, err := openStore(args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.operationLogger("new", store.Path())
			if err != nil {
				return err
			}
			rec, err := store.Create(cmd.Context(), def, overwrite)
			if err != nil {
				return err
			}
			logger.Info("record document created", logging.String(logging.FieldDefaultLanguage, rec.DefaultLanguage()))
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (default language %s)\n", store.Path(), ctx.catalog().Label(rec.DefaultLanguage()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&defaultLanguage, "default", "d", "", "Default language code (defaults to record.default_language)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing document")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show the values of a record document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := ctx.readDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			ed, err := ctx.newEditor(rec, logger, nil)
			if err != nil {
				return err
			}
			defer ed.Close()

			rows := ed.Rows()
			if all {
				rows = ed.AllRows()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRows(rows))
			if hidden := rec.Len() - len(rows); hidden > 0 {
				fmt.Fprintf(out, "%d more language(s); use --all to list them\n", hidden)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every language, not only the default")
	return cmd
}

func renderRows(rows []editor.Row) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			row.Label,
			row.Value,
			yesNo(row.Default),
			strconv.Itoa(len([]rune(row.Value))),
		})
	}
	return renderTable([]string{"Language", "Value", "Default", "Length"}, data, 3)
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <code> <text>",
		Short: "Set the value of one language",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, text := args[1], args[2]
			_, err := ctx.editDocument(cmd.Context(), "set", args[0], nil, func(ed *editor.Editor) error {
				if err := ed.Props().CheckLength(text); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), renderStatusLine("Length", statusWarn, err.Error(), shouldColorize(cmd.ErrOrStderr())))
				}
				return ed.Change(code, text)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", ctx.catalog().Label(code))
			return nil
		},
	}
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <file> <code>",
		Aliases: []string{"rm"},
		Short:   "Remove one non-default language",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[1]
			_, err := ctx.editDocument(cmd.Context(), "remove", args[0], nil, func(ed *editor.Editor) error {
				return ed.Delete(code)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", ctx.catalog().Label(code))
			return nil
		},
	}
}
