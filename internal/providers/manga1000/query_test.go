package manga1000

import (
	"testing"

	"github.com/brogergvhs/manga1000/internal/providers"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSearchMetadataStatus(t *testing.T) {
	tests := []struct {
		status *int
		want   string
	}{
		{intPtr(0), "completed"},
		{intPtr(1), "ongoing"},
		{intPtr(2), ""},
		{intPtr(-1), ""},
		{nil, ""},
	}

	for _, tt := range tests {
		got := SearchMetadata(providers.SearchRequest{Status: tt.status})
		assert.Equal(t, tt.want, got.Status)
	}
}

func TestSearchMetadataNormalizes(t *testing.T) {
	got := SearchMetadata(providers.SearchRequest{
		Title:              "One PIECE",
		Artist:             "ODA",
		IncludeGenre:       []string{"Action"},
		IncludeDemographic: []string{"Shounen"},
		ExcludeDemographic: []string{"Josei"},
		IncludeFormat:      []string{"Manga"},
	})

	assert.Equal(t, "one piece", got.Keyword)
	assert.Equal(t, "oda", got.Author)
	assert.Equal(t, []string{"action", "shounen"}, got.Genre)
	assert.Equal(t, []string{"josei"}, got.GenreNo)
	assert.Equal(t, []string{"manga"}, got.Type)
}

func TestSearchMetadataAuthorWins(t *testing.T) {
	got := SearchMetadata(providers.SearchRequest{Author: "Kishimoto", Artist: "Oda"})
	assert.Equal(t, "kishimoto", got.Author)
}

func TestSearchMetadataEmpty(t *testing.T) {
	got := SearchMetadata(providers.SearchRequest{})
	assert.Empty(t, got.Keyword)
	assert.Empty(t, got.Author)
	assert.Nil(t, got.Genre)
	assert.Nil(t, got.GenreNo)
	assert.Nil(t, got.Type)
}
