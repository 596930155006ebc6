package cmd

import (
	"fmt"

	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective config or manage config profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := loadConfig(config.Options{})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "Loaded config from:\n  %s\n\n", used)
		cfg.Print(w)

		return nil
	},
}

// confirm asks a yes/no question; anything but an explicit yes is a no.
func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	return err == nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
