package manga1000

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeURI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://manga1000.com/naruto", "https://manga1000.com/naruto"},
		{"https://manga1000.com/ワンピース", "https://manga1000.com/" + onePieceEncoded},
		{"a b", "a%20b"},
		{"?s=x&y=#z", "?s=x&y=#z"},
		{"100%", "100%25"},
		{"【1】", "%E3%80%901%E3%80%91"},
		{"-_.!~*'()", "-_.!~*'()"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeURI(tt.in), tt.in)
	}
}

func TestDecodeURI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://manga1000.com/" + onePieceEncoded + "/", "https://manga1000.com/ワンピース/"},
		{"a%20b", "a b"},
		{"keep%2Fslash%3F", "keep%2Fslash%3F"},
		{"broken%2", "broken%2"},
		{"broken%zz", "broken%zz"},
		{"lower%e3%83%af", "lowerワ"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeURI(tt.in), tt.in)
	}
}

func TestURIRoundTrip(t *testing.T) {
	for _, s := range []string{"ワンピース 1巻", "naruto", "【12】 & more", "a/b?c=d"} {
		assert.Equal(t, s, decodeURI(encodeURI(s)), s)
	}
}

func TestMangaIDFromURL(t *testing.T) {
	assert.Equal(t, "ワンピース", mangaIDFromURL("https://manga1000.com/"+onePieceEncoded+"/"))
	assert.Equal(t, "naruto", mangaIDFromURL("http://127.0.0.1:8080/naruto/"))
	assert.Equal(t, "naruto", mangaIDFromURL("/naruto/"))
	assert.Equal(t, "naruto", mangaIDFromURL("https://manga1000.com/naruto"))
	assert.Empty(t, mangaIDFromURL("https://manga1000.com"))
}

func TestEncodeID(t *testing.T) {
	assert.Equal(t, "q%3Fx", encodeID("q%3Fx"))
	assert.Equal(t, "100%25", encodeID("100%"))
	assert.Equal(t, "%25zz", encodeID("%zz"))
	assert.Equal(t, onePieceEncoded, encodeID("ワンピース"))
	assert.Equal(t, encodeURI("a b/c?d"), encodeID("a b/c?d"))
}
