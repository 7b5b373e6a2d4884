package main

import (
	"fmt"
	"strings"

	"orgsetup/internal/orgstate"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	var showHistory bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the current organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			out := cmd.OutOrStdout()
			info, ok, err := repo.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load current organization: %w", err)
			}
			if !ok {
				fmt.Fprintln(out, "No organization selected")
			} else {
				fmt.Fprintf(out, "name:  %s\ncover: %s\n", info.Name, info.Cover)
			}

			if !showHistory {
				return nil
			}
			entries, err := repo.History(cmd.Context(), historyLimit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, historyTable(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHistory, "history", false, "Also list previously selected organizations")
	return cmd
}

// historyTable lays the history out as borderless columns, newest first.
func historyTable(entries []orgstate.HistoryEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.RecordedAt.Local().Format("2006-01-02 15:04"), e.Info.Name, e.Info.Cover})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		Headers("WHEN", "NAME", "COVER").
		Rows(rows...)
	return strings.TrimRight(t.String(), "\n")
}
