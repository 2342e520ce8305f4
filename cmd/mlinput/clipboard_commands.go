package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mlinput/internal/clipboard"
	"mlinput/internal/editor"
	"mlinput/internal/merge"
	"mlinput/internal/sysclip"
)

func newCopyCommand(ctx *commandContext) *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Export a record as tab-separated rows",
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

			text, _ := ed.HandleCopy("")
			useSystem := system || ctx.configValue().Clipboard.UseSystem
			board := sysclip.Select(useSystem, cmd.InOrStdin(), cmd.OutOrStdout())
			if err := board.Write(text); err != nil {
				return err
			}
			if useSystem {
				fmt.Fprintf(cmd.OutOrStdout(), "Copied %d language(s) to the clipboard\n", rec.Len())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "Write to the system clipboard instead of stdout")
	return cmd
}

func newPasteCommand(ctx *commandContext) *cobra.Command {
	var system bool
	var modeFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "paste <file>",
		Short: "Merge tab-separated rows into a record",
		Long: "Reads rows of \"<code><TAB><text>\" from stdin (or the system clipboard) and merges\n" +
			"them into the record. In ask mode the terminal is asked whether to append to\n" +
			"existing values; without a terminal the rows overwrite.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			mode := cfg.MergeMode()
			if strings.TrimSpace(modeFlag) != "" {
				parsed, err := merge.ParseMode(modeFlag)
				if err != nil {
					return err
				}
				mode = parsed
			}

			useSystem := system || cfg.Clipboard.UseSystem
			raw, err := sysclip.Select(useSystem, cmd.InOrStdin(), cmd.OutOrStdout()).Read()
			if err != nil {
				return err
			}

			decider := merge.Fixed(mode)
			if mode == merge.Ask {
				// Stdin carries the rows unless they come from the system clipboard.
				interactive := useSystem && isTerminal(os.Stdin)
				decider = promptDecider(cmd.InOrStdin(), cmd.ErrOrStderr(), interactive)
			}

			var result editor.PasteResult
			_, err = ctx.editDocument(cmd.Context(), "paste", args[0], decider, func(ed *editor.Editor) error {
				res, err := ed.HandlePaste(raw)
				if err != nil {
					return err
				}
				result = res
				if dryRun {
					return errDryRun
				}
				return nil
			})
			switch {
			case errors.Is(err, clipboard.ErrNotBulkData):
				return fmt.Errorf("nothing to paste: %w", err)
			case errors.Is(err, errDryRun):
			case err != nil:
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Mode", statusInfo, result.Mode.String(), colorize))
			fmt.Fprintln(out, renderStatusLine("Applied", statusOK, fmt.Sprintf("%d row(s)", result.Applied), colorize))
			for _, s := range result.Skipped {
				fmt.Fprintln(out, renderStatusLine("Skipped", statusWarn, fmt.Sprintf("%q: %v", s.Entry.Code, s.Err), colorize))
			}
			if dryRun {
				fmt.Fprintln(out, renderStatusLine("Dry run", statusInfo, "document not written", colorize))
				fmt.Fprint(out, ctx.codec().Format(result.Record))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "Read from the system clipboard instead of stdin")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Merge mode: ask, append or overwrite (defaults to merge.mode)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the merged record without writing it")
	return cmd
}

var errDryRun = errors.New("dry run")

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Report whether input is bulk language data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			useSystem := system || ctx.configValue().Clipboard.UseSystem
			raw, err := sysclip.Select(useSystem, cmd.InOrStdin(), cmd.OutOrStdout()).Read()
			if err != nil {
				return err
			}
			codec := ctx.codec()
			out := cmd.OutOrStdout()
			if !codec.Detect(raw) {
				fmt.Fprintln(out, "text")
				return nil
			}
			fmt.Fprintln(out, "bulk")
			catalog := ctx.catalog()
			entries := codec.Parse(raw)
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Code, catalog.DisplayName(e.Code), e.Text})
			}
			fmt.Fprintln(out, renderTable([]string{"Code", "Language", "Text"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "Read from the system clipboard instead of stdin")
	return cmd
}
