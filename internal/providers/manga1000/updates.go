package manga1000

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/brogergvhs/manga1000/internal/providers"
)

var reHotUpdate = regexp.MustCompile(`vm\.HotUpdateJSON = (.*);`)

type hotUpdate struct {
	IndexName string `json:"IndexName"`
	Date      string `json:"Date"`
}

// ParseUpdatedManga reads the hot-update feed embedded in a page script and
// returns the ids from ids that were updated after since.
func ParseUpdatedManga(raw string, since time.Time, ids []string) (*providers.MangaUpdates, error) {
	m := reHotUpdate.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("%w: vm.HotUpdateJSON", ErrMarkerNotFound)
	}

	var feed []hotUpdate
	if err := json.Unmarshal([]byte(m[1]), &feed); err != nil {
		return nil, fmt.Errorf("decode hot updates: %w", err)
	}

	out := &providers.MangaUpdates{IDs: []string{}}
	for _, e := range feed {
		if !slices.Contains(ids, e.IndexName) {
			continue
		}

		updated, ok := parseSiteDate(e.Date)
		if ok && updated.After(since) {
			out.IDs = append(out.IDs, e.IndexName)
		}
	}

	return out, nil
}
