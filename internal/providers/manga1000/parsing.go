package manga1000

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/manga1000/internal/providers"
)

const (
	latestSectionID    = "latest"
	latestSectionTitle = "LATEST UPDATES"
	clockIcon          = "clock.fill"
)

var (
	reNumSubs     = regexp.MustCompile(`vm\.NumSubs = (.*);`)
	reChapBracket = regexp.MustCompile(`【(.*?)】`)
	reDigits      = regexp.MustCompile(`\d+`)
)

// siteDateLayouts are tried in order against tile date attributes and the
// dates of the hot-update feed.
var siteDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Mon Jan 02 2006",
	"Jan 02 2006",
	"January 2, 2006",
	"2006/01/02",
}

func newTagSections() []providers.TagSection {
	return []providers.TagSection{
		{ID: "0", Label: "genres", Tags: []providers.Tag{}},
		{ID: "1", Label: "format", Tags: []providers.Tag{}},
	}
}

// ParseMangaDetails maps a series page to a Manga. The title is not on the
// page in a usable form, so it is taken from the id.
func ParseMangaDetails(doc *goquery.Document, mangaID string) (*providers.Manga, error) {
	// Script bodies are text nodes, so the follower marker survives Text().
	raw := doc.Text()

	cover := doc.Find(".wp-block-image").Find("img").First()
	if cover.Length() == 0 {
		return nil, structureError("no cover image in .wp-block-image")
	}
	image, _ := cover.Attr("src")

	info := doc.Find(".has-text-color").First()

	var author string
	if h, err := info.Html(); err == nil {
		if _, after, found := strings.Cut(h, ": "); found {
			if before, _, br := strings.Cut(after, "<br"); br {
				after = before
			}
			author = strings.TrimSpace(decodeEntities(after))
		}
	}

	var desc string
	if h, err := info.Next().Html(); err == nil {
		desc = decodeEntities(h)
	}

	tags := newTagSections()
	doc.Find(".tags-links").Find("a").Each(func(_ int, a *goquery.Selection) {
		label := a.Text()
		tags[0].Tags = append(tags[0].Tags, providers.Tag{ID: label, Label: label})
	})

	return &providers.Manga{
		ID:      mangaID,
		Titles:  []string{strings.Split(mangaID, " ")[0]},
		Image:   image,
		Status:  providers.StatusOngoing,
		Author:  author,
		Desc:    desc,
		Tags:    tags,
		Follows: parseFollows(raw),
	}, nil
}

func parseFollows(raw string) int {
	m := reNumSubs.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}

	v := strings.TrimSpace(m[1])
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}

	return 0
}

// ParseChapters reads every link in the chapter table, in page order.
func ParseChapters(doc *goquery.Document, mangaID string) []providers.Chapter {
	chapters := []providers.Chapter{}

	doc.Find("td").Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		id := decodeURI(href)

		chapters = append(chapters, providers.Chapter{
			ID:       id,
			MangaID:  mangaID,
			ChapNum:  chapterNumber(id),
			LangCode: providers.LanguageJapanese,
		})
	})

	return chapters
}

// chapterNumber extracts the first digit run inside 【…】, or 0.
func chapterNumber(s string) float64 {
	bracket := reChapBracket.FindString(s)
	if bracket == "" {
		return 0
	}

	digits := reDigits.FindString(bracket)
	if digits == "" {
		return 0
	}

	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}

	return n
}

// ParseChapterDetails lists page images. Lazy-loaded images carry the real
// URL in data-src, so that wins over src for each image on its own.
func ParseChapterDetails(doc *goquery.Document, mangaID, chapterID string) *providers.ChapterDetails {
	pages := []string{}

	doc.Find(".wp-block-image").Find("img").Each(func(_ int, img *goquery.Selection) {
		page, _ := img.Attr("data-src")
		if page == "" {
			page, _ = img.Attr("src")
		}
		pages = append(pages, page)
	})

	return &providers.ChapterDetails{
		ID:        chapterID,
		MangaID:   mangaID,
		Pages:     pages,
		LongStrip: false,
	}
}

// parseTiles is shared by search, home and view-more listings.
func parseTiles(doc *goquery.Document) ([]providers.MangaTile, error) {
	tiles := []providers.MangaTile{}
	var err error

	doc.Find("article").Find(".featured-thumb").EachWithBreak(func(_ int, thumb *goquery.Selection) bool {
		href, ok := thumb.Find("a").First().Attr("href")
		if !ok {
			err = structureError("featured thumb without link")
			return false
		}

		img := thumb.Find("img").First()
		if img.Length() == 0 {
			err = structureError("featured thumb without image")
			return false
		}

		alt, _ := img.Attr("alt")
		title, _, _ := strings.Cut(alt, "(")
		src, _ := img.Attr("src")
		date, _ := img.Attr("date")

		tiles = append(tiles, providers.MangaTile{
			ID:            mangaIDFromURL(href),
			Image:         src,
			Title:         providers.IconText{Text: strings.TrimSpace(title)},
			SecondaryText: providers.IconText{Text: FormatTileDate(date), Icon: clockIcon},
		})

		return true
	})

	if err != nil {
		return nil, err
	}

	return tiles, nil
}

// nextPage returns the token for the page after the current one, or nil when
// the pager has nothing after the current page marker.
func nextPage(doc *goquery.Document, token *providers.PageToken) *providers.PageToken {
	page := 1
	if token != nil && token.Page > 0 {
		page = token.Page
	}

	if doc.Find(".page-numbers.current").Next().Length() == 0 {
		return nil
	}

	return &providers.PageToken{Page: page + 1}
}

func parsePaged(doc *goquery.Document, token *providers.PageToken) (*providers.PagedResults, error) {
	tiles, err := parseTiles(doc)
	if err != nil {
		return nil, err
	}

	return &providers.PagedResults{
		Results:  tiles,
		Metadata: nextPage(doc, token),
	}, nil
}

func ParseSearch(doc *goquery.Document, token *providers.PageToken) (*providers.PagedResults, error) {
	return parsePaged(doc, token)
}

// ParseViewMore ignores the section id: the site has a single listing.
func ParseViewMore(doc *goquery.Document, _ string, token *providers.PageToken) (*providers.PagedResults, error) {
	return parsePaged(doc, token)
}

// ParseHomeSections announces the latest-updates section, then delivers it
// again with its tiles filled in.
func ParseHomeSections(doc *goquery.Document, emit func(providers.HomeSection)) error {
	section := providers.HomeSection{
		ID:       latestSectionID,
		Title:    latestSectionTitle,
		ViewMore: true,
	}
	emit(section)

	tiles, err := parseTiles(doc)
	if err != nil {
		return err
	}

	section.Items = tiles
	emit(section)

	return nil
}

func parseSiteDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range siteDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatTileDate renders a tile date as "Mar 04". Unparseable input yields "".
func FormatTileDate(raw string) string {
	t, ok := parseSiteDate(raw)
	if !ok {
		return ""
	}

	return trimDateString(t.Format("Mon Jan 02 2006"))
}

// trimDateString drops the weekday and the year: "Wed Mar 04 2020" -> "Mar 04".
func trimDateString(s string) string {
	if len(s) < 9 {
		return s
	}

	s = s[:len(s)-5]
	return s[4:]
}
