package cmd

import (
	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/providers"
	"github.com/brogergvhs/manga1000/internal/ui"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the home page sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		var printErr error

		err = s.source.GetHomePageSections(cmd.Context(), func(section providers.HomeSection) {
			if section.Items == nil {
				s.log.Debugf("section %q announced\n", section.ID)
				return
			}

			ui.Heading(w, section.Title)
			if err := printTiles(w, section.Items); err != nil && printErr == nil {
				printErr = err
			}
			if section.ViewMore {
				ui.Muted(w, "More: manga1000 more %s --page 2\n", section.ID)
			}
		})
		if err != nil {
			return err
		}

		return printErr
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
