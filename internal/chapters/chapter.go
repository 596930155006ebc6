package chapters

import (
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/brogergvhs/manga1000/internal/providers"
)

var reUnderscore = regexp.MustCompile(`_+`)

// Chapter names the files a downloaded chapter is written to.
type Chapter struct {
	providers.Chapter

	// Series is the manga's display title.
	Series string

	// Index is the 1-based list position, appended to the name when another
	// chapter in the same list has the same number.
	Index int
	dup   bool
}

func New(c providers.Chapter, series string) Chapter {
	return Chapter{Chapter: c, Series: series}
}

// Wrap names a whole list. Chapters that would end up with the same file
// name get their list position appended so they never share a folder or CBZ.
func Wrap(all []providers.Chapter, series string) []Chapter {
	out := make([]Chapter, len(all))
	seen := make(map[string]int, len(all))

	for i, c := range all {
		out[i] = New(c, series)
		out[i].Index = i + 1
		seen[out[i].baseName()]++
	}

	for i := range out {
		out[i].dup = seen[out[i].baseName()] > 1
	}

	return out
}

func sanitize(s string) string {
	s = strings.ToLower(s)

	s = strings.NewReplacer(
		"•", "_",
		"-", "_",
		"—", "_",
		"–", "_",
		"/", "_",
		"\\", "_",
		".", "_",
		" ", "_",
		"　", "_",
		"(", "",
		")", "",
		"【", "_",
		"】", "_",
	).Replace(s)

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, s)

	return strings.Trim(reUnderscore.ReplaceAllString(s, "_"), "_")
}

// baseName is "<series>_ch_<label>". Chapters without a number fall back to
// the last segment of their page URL so they do not collide.
func (c Chapter) baseName() string {
	var tail string
	if c.ChapNum > 0 {
		tail = "ch_" + sanitize(c.Label())
	} else {
		tail = sanitize(path.Base(strings.TrimRight(c.ID, "/")))
	}
	if tail == "" {
		tail = "ch_0"
	}

	series := sanitize(c.Series)
	if series == "" {
		return tail
	}

	return series + "_" + tail
}

func (c Chapter) fileName() string {
	if c.dup {
		return c.baseName() + "_" + strconv.Itoa(c.Index)
	}

	return c.baseName()
}

func (c Chapter) FolderName() string {
	return c.fileName() + "_tmp"
}

func (c Chapter) OutputCBZ() string {
	return c.fileName() + ".cbz"
}

func (c Chapter) OutputCBZPath(out string) string {
	return filepath.Join(out, c.OutputCBZ())
}
