package providers

import (
	"math"
	"strconv"
	"strings"
)

// Select returns the list positions picked by one of three selectors, in
// order of precedence:
//
//	chapter  a chapter number ("12", "12.5"), else a 1-based list index
//	rng      a chapter-number range "10-12.5"; either end may be left open
//	list     comma-separated entries, each resolved like chapter
//
// With no selector every position is returned.
func Select(all []Chapter, chapter, rng, list string) []int {
	switch {
	case chapter != "":
		return resolve(all, chapter)
	case rng != "":
		return selectRange(all, rng)
	case list != "":
		return selectList(all, list)
	}

	idx := make([]int, len(all))
	for i := range all {
		idx[i] = i
	}

	return idx
}

func Filter(all []Chapter, chapter, rng, list string) []Chapter {
	return pick(all, Select(all, chapter, rng, list))
}

func FilterByLabel(all []Chapter, label string) []Chapter {
	return pick(all, byNumber(all, label))
}

func FilterRange(all []Chapter, rng string) []Chapter {
	return pick(all, selectRange(all, rng))
}

func FilterList(all []Chapter, list string) []Chapter {
	return pick(all, selectList(all, list))
}

func pick(all []Chapter, idx []int) []Chapter {
	if len(idx) == 0 {
		return nil
	}

	out := make([]Chapter, len(idx))
	for i, j := range idx {
		out[i] = all[j]
	}

	return out
}

// resolve matches token against chapter numbers first; a whole number that
// matches no chapter is taken as a list index.
func resolve(all []Chapter, token string) []int {
	token = strings.TrimSpace(token)

	if idx := byNumber(all, token); len(idx) > 0 {
		return idx
	}

	if n, err := strconv.Atoi(token); err == nil && n > 0 && n <= len(all) {
		return []int{n - 1}
	}

	return nil
}

func byNumber(all []Chapter, token string) []int {
	n, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return nil
	}

	var idx []int
	for i, c := range all {
		if c.ChapNum == n {
			idx = append(idx, i)
		}
	}

	return idx
}

func selectRange(all []Chapter, rng string) []int {
	lo, hi, ok := parseRange(rng)
	if !ok {
		return nil
	}

	var idx []int
	for i, c := range all {
		if c.ChapNum >= lo && c.ChapNum <= hi {
			idx = append(idx, i)
		}
	}

	return idx
}

func parseRange(rng string) (float64, float64, bool) {
	from, to, found := strings.Cut(strings.TrimSpace(rng), "-")
	if !found {
		return 0, 0, false
	}

	lo, hi := math.Inf(-1), math.Inf(1)
	var err error

	if from = strings.TrimSpace(from); from != "" {
		if lo, err = strconv.ParseFloat(from, 64); err != nil {
			return 0, 0, false
		}
	}
	if to = strings.TrimSpace(to); to != "" {
		if hi, err = strconv.ParseFloat(to, 64); err != nil {
			return 0, 0, false
		}
	}

	if (from == "" && to == "") || lo > hi {
		return 0, 0, false
	}

	return lo, hi, true
}

func selectList(all []Chapter, list string) []int {
	var idx []int
	seen := map[int]bool{}

	for entry := range strings.SplitSeq(list, ",") {
		for _, i := range resolve(all, entry) {
			if !seen[i] {
				seen[i] = true
				idx = append(idx, i)
			}
		}
	}

	return idx
}
