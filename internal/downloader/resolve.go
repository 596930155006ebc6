package downloader

import "net/url"

// ResolvePages makes relative and protocol-relative page URLs absolute
// against the chapter page they were found on.
func ResolvePages(chapterURL string, pages []string) []string {
	base, err := url.Parse(chapterURL)
	if err != nil {
		return pages
	}

	out := make([]string, len(pages))
	for i, raw := range pages {
		out[i] = resolve(base, raw)
	}

	return out
}

func resolve(base *url.URL, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() {
		return raw
	}

	return base.ResolveReference(u).String()
}
