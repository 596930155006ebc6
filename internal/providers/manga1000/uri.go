package manga1000

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	uriMarks    = "-_.!~*'()"
	uriReserved = ";/?:@&=+$,#"
	upperhex    = "0123456789ABCDEF"
)

func isURIKept(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte(uriMarks, c) >= 0 || strings.IndexByte(uriReserved, c) >= 0
}

// encodeURI percent-encodes s the way browsers encode a whole URL: reserved
// characters and unreserved marks pass through, every other byte is escaped.
func encodeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIKept(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

// encodeID encodes a manga or chapter id for use in a URL. It behaves like
// encodeURI except that valid escapes are kept: ids come from decodeURI,
// which leaves escaped reserved characters (%3F, %23, ...) in place.
func encodeID(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			_, ok1 := unhex(s[i+1])
			_, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b.WriteString(s[i : i+3])
				i += 2
				continue
			}
		}
		if isURIKept(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

// decodeURI is the inverse of encodeURI. Escapes of reserved characters are
// kept as-is and malformed escapes are copied through untouched.
func decodeURI(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+2 >= len(s) {
			b.WriteByte(s[i])
			continue
		}

		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			b.WriteByte(s[i])
			continue
		}

		c := hi<<4 | lo
		if c < 0x80 && strings.IndexByte(uriReserved, c) >= 0 {
			b.WriteString(s[i : i+3])
		} else {
			b.WriteByte(c)
		}
		i += 2
	}

	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

func decodeEntities(s string) string {
	return html.UnescapeString(s)
}

// mangaIDFromURL turns a series link into its id: the decoded path after the
// host, without the trailing slash.
func mangaIDFromURL(href string) string {
	rest := decodeURI(strings.TrimSpace(href))

	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
		j := strings.IndexByte(rest, '/')
		if j < 0 {
			return ""
		}
		rest = rest[j+1:]
	} else {
		rest = strings.TrimPrefix(rest, "/")
	}

	return strings.TrimSuffix(rest, "/")
}
