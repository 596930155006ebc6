package cmd

import (
	"io"

	"github.com/brogergvhs/manga1000/internal/providers"
	"github.com/brogergvhs/manga1000/internal/ui"
)

func printTiles(w io.Writer, tiles []providers.MangaTile) error {
	if len(tiles) == 0 {
		ui.Muted(w, "Nothing found.\n")
		return nil
	}

	rows := make([][]string, len(tiles))
	for i, t := range tiles {
		rows[i] = []string{t.Title.Text, t.ID, t.SecondaryText.Text}
	}

	return ui.PrintTable(w, []string{"Title", "ID", "Updated"}, rows)
}

func printPaged(w io.Writer, res *providers.PagedResults) error {
	if err := printTiles(w, res.Results); err != nil {
		return err
	}

	if res.Metadata != nil {
		ui.Muted(w, "More results: --page %d\n", res.Metadata.Page)
	}

	return nil
}

func pageToken(page int) *providers.PageToken {
	if page <= 1 {
		return nil
	}

	return &providers.PageToken{Page: page}
}
