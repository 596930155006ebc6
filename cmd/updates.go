package cmd

import (
	"fmt"
	"time"

	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/ui"

	"github.com/spf13/cobra"
)

var flagSince string

var updatesCmd = &cobra.Command{
	Use:   "updates <manga-id>...",
	Short: "Report which of the given manga were updated since a date",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		since, err := parseSince(flagSince)
		if err != nil {
			return err
		}

		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		res, err := s.source.FilterUpdatedManga(cmd.Context(), since, args)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(res.IDs) == 0 {
			ui.Muted(w, "No updates since %s.\n", since.Format(time.DateOnly))
			return nil
		}

		for _, id := range res.IDs {
			_, _ = fmt.Fprintln(w, id)
		}

		return nil
	},
}

func parseSince(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("--since is required")
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid --since %q: want RFC3339 or YYYY-MM-DD", s)
}

func init() {
	updatesCmd.Flags().StringVar(&flagSince, "since", "", "only report manga updated after this time (RFC3339 or YYYY-MM-DD)")
	rootCmd.AddCommand(updatesCmd)
}
