package cmd

import (
	"fmt"

	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/spf13/cobra"
)

var flagForceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]
		w := cmd.OutOrStdout()

		active, _ := config.CurrentLabel()
		if label == active && !flagForceRemove {
			if !confirm(fmt.Sprintf("Config %q is currently active. Remove it anyway", label)) {
				_, _ = fmt.Fprintln(w, "Aborted.")
				return nil
			}
		}

		switched, err := config.RemoveConfig(label)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "Removed configuration %q\n", label)
		if switched {
			_, _ = fmt.Fprintln(w, "Fallback switched to:", config.DefaultLabel)
		}

		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&flagForceRemove, "force", "f", false, "do not ask before removing the active config")
	configCmd.AddCommand(configRemoveCmd)
}
