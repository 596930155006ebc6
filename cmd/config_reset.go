package cmd

import (
	"fmt"

	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset [label]",
	Short: "Reset the current or the named config to default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			var err error
			if label, err = config.CurrentLabel(); err != nil {
				return err
			}
		}

		if err := config.ResetConfig(label); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset config: %s\n", config.ConfigPathByLabel(label))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
