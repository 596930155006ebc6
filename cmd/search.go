package cmd

import (
	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/providers"
	"github.com/brogergvhs/manga1000/internal/providers/manga1000"

	"github.com/spf13/cobra"
)

var (
	flagSearchPage   int
	flagSearchAuthor string
	flagSearchArtist string
	flagSearchStatus string
	flagSearchGenre  []string
	flagSearchNoGen  []string
	flagSearchFormat []string
)

var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search the site by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, config.Options{})
		if err != nil {
			return err
		}

		q := providers.SearchRequest{
			Title:         args[0],
			Author:        flagSearchAuthor,
			Artist:        flagSearchArtist,
			Status:        statusCode(flagSearchStatus),
			IncludeGenre:  flagSearchGenre,
			ExcludeGenre:  flagSearchNoGen,
			IncludeFormat: flagSearchFormat,
		}

		meta := manga1000.SearchMetadata(q)
		s.log.Debugf("search query: %+v\n", meta)

		res, err := s.source.Search(cmd.Context(), q, pageToken(flagSearchPage))
		if err != nil {
			return err
		}

		return printPaged(cmd.OutOrStdout(), res)
	},
}

func statusCode(s string) *int {
	var code int
	switch s {
	case "completed":
		code = 0
	case "ongoing":
		code = 1
	default:
		return nil
	}

	return &code
}

func init() {
	f := searchCmd.Flags()
	f.IntVar(&flagSearchPage, "page", 1, "result page")
	f.StringVar(&flagSearchAuthor, "author", "", "author name")
	f.StringVar(&flagSearchArtist, "artist", "", "artist name, used when --author is empty")
	f.StringVar(&flagSearchStatus, "status", "", "completed or ongoing")
	f.StringSliceVar(&flagSearchGenre, "genre", nil, "genres to include")
	f.StringSliceVar(&flagSearchNoGen, "exclude-genre", nil, "genres to exclude")
	f.StringSliceVar(&flagSearchFormat, "format", nil, "formats to include")

	rootCmd.AddCommand(searchCmd)
}
