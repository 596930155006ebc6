package providers

import (
	"context"
	"strconv"
	"time"
)

type MangaStatus int

const (
	StatusCompleted MangaStatus = iota
	StatusOngoing
)

func (s MangaStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

const LanguageJapanese = "jp"

type Tag struct {
	ID    string
	Label string
}

type TagSection struct {
	ID    string
	Label string
	Tags  []Tag
}

type Manga struct {
	ID      string
	Titles  []string
	Image   string
	Rating  float64
	Status  MangaStatus
	Author  string
	Desc    string
	Tags    []TagSection
	Hentai  bool
	Follows int
}

// Chapter is one entry of a manga's chapter list. ID is the full chapter page URL.
type Chapter struct {
	ID       string
	MangaID  string
	ChapNum  float64
	LangCode string
}

// Label renders the chapter number the way users type it (12, 12.5).
func (c Chapter) Label() string {
	return strconv.FormatFloat(c.ChapNum, 'f', -1, 64)
}

type ChapterDetails struct {
	ID        string
	MangaID   string
	Pages     []string
	LongStrip bool
}

type IconText struct {
	Text string
	Icon string
}

type MangaTile struct {
	ID            string
	Image         string
	Title         IconText
	SecondaryText IconText
}

// PageToken is the opaque pagination cursor echoed back by the host.
// A nil *PageToken means there are no more pages.
type PageToken struct {
	Page int
}

type PagedResults struct {
	Results  []MangaTile
	Metadata *PageToken
}

type HomeSection struct {
	ID       string
	Title    string
	ViewMore bool
	Items    []MangaTile
}

type SearchRequest struct {
	Title              string
	Author             string
	Artist             string
	Status             *int
	IncludeGenre       []string
	ExcludeGenre       []string
	IncludeDemographic []string
	ExcludeDemographic []string
	IncludeFormat      []string
}

type MangaUpdates struct {
	IDs []string
}

type TagType string

const (
	TagGreen TagType = "success"
	TagGrey  TagType = "default"
)

type SourceTag struct {
	Text string
	Type TagType
}

type SourceInfo struct {
	Version        string
	Name           string
	Icon           string
	Author         string
	AuthorWebsite  string
	Description    string
	Hentai         bool
	WebsiteBaseURL string
	SourceTags     []SourceTag
}

// Request is a single outbound call handed to the host's Scheduler.
type Request struct {
	URL     string
	Method  string
	Headers map[string]string
}

type Response struct {
	Data   string
	Status int
}

// Scheduler is supplied by the host and performs the actual HTTP exchange.
// Global headers, retries and connection reuse are its concern.
type Scheduler interface {
	Schedule(ctx context.Context, req Request) (*Response, error)
}

// Source is the fixed entry-point set a host drives.
type Source interface {
	Info() SourceInfo
	GetMangaDetails(ctx context.Context, mangaID string) (*Manga, error)
	GetChapters(ctx context.Context, mangaID string) ([]Chapter, error)
	GetChapterDetails(ctx context.Context, mangaID, chapterID string) (*ChapterDetails, error)
	Search(ctx context.Context, query SearchRequest, token *PageToken) (*PagedResults, error)
	GetHomePageSections(ctx context.Context, emit func(HomeSection)) error
	GetViewMoreItems(ctx context.Context, sectionID string, token *PageToken) (*PagedResults, error)
	FilterUpdatedManga(ctx context.Context, since time.Time, ids []string) (*MangaUpdates, error)
	GetMangaShareURL(mangaID string) string
	GlobalRequestHeaders() map[string]string
}
