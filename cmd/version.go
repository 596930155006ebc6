package cmd

import (
	"fmt"

	"github.com/brogergvhs/manga1000/internal/providers/manga1000"

	"github.com/spf13/cobra"
)

var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the CLI and source versions",
	Run: func(cmd *cobra.Command, args []string) {
		info := manga1000.New(nil).Info()

		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(w, "manga1000 version:", Version)
		_, _ = fmt.Fprintf(w, "source: %s %s by %s\n", info.Name, info.Version, info.Author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
