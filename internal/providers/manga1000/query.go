package manga1000

import (
	"strings"

	"github.com/brogergvhs/manga1000/internal/providers"
)

// QueryMetadata is a SearchRequest normalized to the site's vocabulary.
type QueryMetadata struct {
	Keyword string
	Author  string
	Status  string
	Type    []string
	Genre   []string
	GenreNo []string
}

func SearchMetadata(q providers.SearchRequest) QueryMetadata {
	author := q.Author
	if author == "" {
		author = q.Artist
	}

	return QueryMetadata{
		Keyword: strings.ToLower(q.Title),
		Author:  strings.ToLower(author),
		Status:  statusName(q.Status),
		Type:    lowerAll(q.IncludeFormat),
		Genre:   lowerAll(merge(q.IncludeGenre, q.IncludeDemographic)),
		GenreNo: lowerAll(merge(q.ExcludeGenre, q.ExcludeDemographic)),
	}
}

func statusName(code *int) string {
	if code == nil {
		return ""
	}

	switch *code {
	case 0:
		return "completed"
	case 1:
		return "ongoing"
	default:
		return ""
	}
}

func merge(a, b []string) []string {
	if a == nil && b == nil {
		return nil
	}

	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

func lowerAll(in []string) []string {
	if in == nil {
		return nil
	}

	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}

	return out
}
