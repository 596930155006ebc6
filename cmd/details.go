package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/ui"

	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <manga-id>",
	Short: "Show a manga's details page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		m, err := s.source.GetMangaDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		ui.Heading(w, strings.Join(m.Titles, " / "))
		ui.Field(w, "ID", m.ID)
		ui.Field(w, "Author", m.Author)
		ui.Field(w, "Status", m.Status.String())
		ui.Field(w, "Follows", strconv.Itoa(m.Follows))
		ui.Field(w, "Cover", m.Image)
		ui.Field(w, "URL", s.source.GetMangaShareURL(m.ID))

		for _, section := range m.Tags {
			labels := make([]string, 0, len(section.Tags))
			for _, t := range section.Tags {
				labels = append(labels, t.Label)
			}
			ui.Field(w, "Tags ("+section.Label+")", strings.Join(labels, ", "))
		}

		if m.Desc != "" {
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, strings.TrimSpace(m.Desc))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}
