package cmd

import (
	"fmt"

	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <manga-id>",
	Short: "Print the public URL of a manga",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), s.source.GetMangaShareURL(args[0]))
		return err
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
