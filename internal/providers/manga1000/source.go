package manga1000

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/manga1000/internal/providers"
)

const (
	BaseURL = "https://manga1000.com"
	Version = "0.0.1"

	method = "GET"
)

// Sent on chapter requests for parity with the site's own reader; GET ignores it.
var formHeaders = map[string]string{"content-type": "application/x-www-form-urlencoded"}

type Logger interface {
	Debugf(format string, args ...any)
}

type Source struct {
	scheduler providers.Scheduler
	baseURL   string
	log       Logger
}

var _ providers.Source = (*Source)(nil)

type Option func(*Source)

// WithBaseURL points the source at a mirror or a test server.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

func WithLogger(l Logger) Option {
	return func(s *Source) {
		s.log = l
	}
}

func New(scheduler providers.Scheduler, opts ...Option) *Source {
	s := &Source{
		scheduler: scheduler,
		baseURL:   BaseURL,
	}
	for _, o := range opts {
		o(s)
	}

	return s
}

func (s *Source) Info() providers.SourceInfo {
	return providers.SourceInfo{
		Version:        Version,
		Name:           "Manga1000",
		Icon:           "Logo.png",
		Author:         "Swaggy P",
		AuthorWebsite:  "https://github.com/swaggy-p-jp",
		Description:    "Extension that pulls manga from Manga1000",
		Hentai:         false,
		WebsiteBaseURL: s.baseURL,
		SourceTags: []providers.SourceTag{
			{Text: "Notifications", Type: providers.TagGreen},
			{Text: "Japanese", Type: providers.TagGrey},
		},
	}
}

func (s *Source) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Source) fetchBody(ctx context.Context, target string, headers map[string]string) (string, error) {
	s.debugf("manga1000: %s %s\n", method, target)

	resp, err := s.scheduler.Schedule(ctx, providers.Request{
		URL:     target,
		Method:  method,
		Headers: headers,
	})
	if err != nil {
		return "", fmt.Errorf("manga1000: %s %s: %w", method, target, err)
	}
	if resp == nil {
		return "", fmt.Errorf("manga1000: %s %s: empty response", method, target)
	}
	if resp.Status != 0 && (resp.Status < 200 || resp.Status > 299) {
		return "", &HTTPStatusError{URL: target, Status: resp.Status}
	}

	return resp.Data, nil
}

func (s *Source) fetchDOM(ctx context.Context, target string, headers map[string]string) (*goquery.Document, error) {
	body, err := s.fetchBody(ctx, target, headers)
	if err != nil {
		return nil, err
	}

	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

// mangaURL is the series page of mangaID. Share links are the same URL
// with a trailing slash.
func (s *Source) mangaURL(mangaID string) string {
	return s.baseURL + "/" + encodeID(decodeEntities(mangaID))
}

func (s *Source) GetMangaShareURL(mangaID string) string {
	return s.mangaURL(mangaID) + "/"
}

func (s *Source) GlobalRequestHeaders() map[string]string {
	return map[string]string{"referer": s.baseURL}
}

func (s *Source) GetMangaDetails(ctx context.Context, mangaID string) (*providers.Manga, error) {
	doc, err := s.fetchDOM(ctx, s.mangaURL(mangaID), nil)
	if err != nil {
		return nil, err
	}

	m, err := ParseMangaDetails(doc, mangaID)
	if err != nil {
		return nil, fmt.Errorf("manga %q: %w", mangaID, err)
	}

	return m, nil
}

func (s *Source) GetChapters(ctx context.Context, mangaID string) ([]providers.Chapter, error) {
	doc, err := s.fetchDOM(ctx, s.mangaURL(mangaID), formHeaders)
	if err != nil {
		return nil, err
	}

	return ParseChapters(doc, mangaID), nil
}

// GetChapterDetails fetches chapterID itself: chapter ids are full URLs.
func (s *Source) GetChapterDetails(ctx context.Context, mangaID, chapterID string) (*providers.ChapterDetails, error) {
	doc, err := s.fetchDOM(ctx, encodeID(chapterID), formHeaders)
	if err != nil {
		return nil, err
	}

	return ParseChapterDetails(doc, mangaID, chapterID), nil
}

func (s *Source) searchURL(title string, token *providers.PageToken) string {
	if token != nil && token.Page > 0 {
		return fmt.Sprintf("%s/page/%d/?s=%s", s.baseURL, token.Page, encodeURI(title))
	}

	return fmt.Sprintf("%s/?s=%s", s.baseURL, encodeURI(title))
}

func (s *Source) Search(ctx context.Context, query providers.SearchRequest, token *providers.PageToken) (*providers.PagedResults, error) {
	doc, err := s.fetchDOM(ctx, s.searchURL(query.Title, token), nil)
	if err != nil {
		return nil, err
	}

	res, err := ParseSearch(doc, token)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query.Title, err)
	}

	return res, nil
}

func (s *Source) GetHomePageSections(ctx context.Context, emit func(providers.HomeSection)) error {
	if emit == nil {
		return errors.New("manga1000: nil section callback")
	}

	doc, err := s.fetchDOM(ctx, s.baseURL, nil)
	if err != nil {
		return err
	}

	return ParseHomeSections(doc, emit)
}

func (s *Source) listingURL(token *providers.PageToken) string {
	if token != nil && token.Page > 0 {
		return fmt.Sprintf("%s/page/%d/", s.baseURL, token.Page)
	}

	return s.baseURL + "/"
}

func (s *Source) GetViewMoreItems(ctx context.Context, sectionID string, token *providers.PageToken) (*providers.PagedResults, error) {
	doc, err := s.fetchDOM(ctx, s.listingURL(token), nil)
	if err != nil {
		return nil, err
	}

	res, err := ParseViewMore(doc, sectionID, token)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", sectionID, err)
	}

	return res, nil
}

func (s *Source) FilterUpdatedManga(ctx context.Context, since time.Time, ids []string) (*providers.MangaUpdates, error) {
	body, err := s.fetchBody(ctx, s.baseURL, nil)
	if err != nil {
		return nil, err
	}

	return ParseUpdatedManga(body, since, ids)
}
