package cmd

import (
	"fmt"
	"strconv"

	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/providers"
	"github.com/brogergvhs/manga1000/internal/ui"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <manga-id>",
	Short: "List a manga's chapters with their index and number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		all, err := s.source.GetChapters(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(all) == 0 {
			ui.Muted(w, "No chapters found.\n")
			return nil
		}

		_, _ = fmt.Fprintf(w, "Found %d chapters.\n\n", len(all))
		return printChapters(cmd, all)
	},
}

func printChapters(cmd *cobra.Command, all []providers.Chapter) error {
	rows := make([][]string, len(all))
	for i, c := range all {
		rows[i] = []string{strconv.Itoa(i + 1), c.Label(), c.ID}
	}

	return ui.PrintTable(cmd.OutOrStdout(), []string{"#", "Chapter", "URL"}, rows)
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
