package cmd

import (
	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/ui"

	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available configs",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := config.ListConfigs()
		if err != nil {
			return err
		}

		if len(list) == 0 {
			ui.Muted(cmd.OutOrStdout(), "No configs yet. Run `manga1000 config init`.\n")
			return nil
		}

		rows := make([][]string, len(list))
		for i, c := range list {
			active := ""
			if c.Active {
				active = "yes"
			}
			rows[i] = []string{c.Label, c.Path, active}
		}

		return ui.PrintTable(cmd.OutOrStdout(), []string{"Label", "Path", "Active"}, rows)
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
}
