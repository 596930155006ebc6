package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/brogergvhs/manga1000/internal/config"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		defaultPath := config.ConfigPathByLabel(config.DefaultLabel)

		if _, err := os.Stat(defaultPath); err == nil {
			_, _ = fmt.Fprintf(w, "Configuration already exists at:\n   %s\n", defaultPath)
			_, _ = fmt.Fprintln(w, "Use `manga1000 config reset` to recreate it.")
			return nil
		}

		_, _ = fmt.Fprintln(w, "Default configuration:")
		config.DefaultConfig().Print(w)
		_, _ = fmt.Fprintln(w)

		if !confirm(fmt.Sprintf("Create Default config at %s", defaultPath)) {
			_, _ = fmt.Fprintln(w, "Aborted.")
			return nil
		}

		path, err := config.InitDefaultConfig()
		if err != nil && !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		_, _ = fmt.Fprintln(w, "Config created at:", path)
		_, _ = fmt.Fprintln(w, "This config is now active (label: Default).")

		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
