package cmd

import (
	"fmt"

	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <manga-id> <chapter-url>",
	Short: "Print the page image URLs of a chapter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		details, err := s.source.GetChapterDetails(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, p := range details.Pages {
			_, _ = fmt.Fprintln(w, p)
		}
		s.log.Debugf("%d pages\n", len(details.Pages))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
