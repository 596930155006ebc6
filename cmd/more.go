package cmd

import (
	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/spf13/cobra"
)

var flagMorePage int

var moreCmd = &cobra.Command{
	Use:   "more [section]",
	Short: "Page through a home section (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		section := "latest"
		if len(args) == 1 {
			section = args[0]
		}

		res, err := s.source.GetViewMoreItems(cmd.Context(), section, pageToken(flagMorePage))
		if err != nil {
			return err
		}

		return printPaged(cmd.OutOrStdout(), res)
	},
}

func init() {
	moreCmd.Flags().IntVar(&flagMorePage, "page", 1, "listing page")
	rootCmd.AddCommand(moreCmd)
}
