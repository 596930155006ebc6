package util

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCBZ(t *testing.T) {
	dir := t.TempDir()

	var files []string
	for _, name := range []string{"page_002.jpg", "page_001.jpg"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		files = append(files, p)
	}

	out := filepath.Join(dir, "ch.cbz")
	err := CreateCBZ(files, out, &ComicInfo{Series: "ワンピース", Number: "12", PageCount: 2, Manga: "YesAndRightToLeft"})
	require.NoError(t, err)

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 3)
	assert.Equal(t, "page_001.jpg", r.File[0].Name)
	assert.Equal(t, "page_002.jpg", r.File[1].Name)
	assert.Equal(t, "ComicInfo.xml", r.File[2].Name)

	rc, err := r.File[2].Open()
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<Series>ワンピース</Series>")
	assert.Contains(t, string(body), "<PageCount>2</PageCount>")
	assert.NotContains(t, string(body), "<Writer>")

	// caller's slice order is left alone
	assert.Equal(t, "page_002.jpg", filepath.Base(files[0]))
}

func TestCreateCBZWithoutInfo(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "page_001.png")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))

	out := filepath.Join(dir, "plain.cbz")
	require.NoError(t, CreateCBZ([]string{p}, out, nil))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()
	assert.Len(t, r.File, 1)
}

func TestCreateCBZMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := CreateCBZ([]string{filepath.Join(dir, "nope.jpg")}, filepath.Join(dir, "x.cbz"), nil)
	assert.Error(t, err)
}

func TestCreateCBZReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full on this system")
	}

	dir := t.TempDir()
	page := filepath.Join(dir, "page_001.jpg")
	require.NoError(t, os.WriteFile(page, []byte("JPEG"), 0644))

	// The zip writer buffers small entries, so the failure surfaces on close.
	err := CreateCBZ([]string{page}, "/dev/full", &ComicInfo{Title: "x"})
	assert.Error(t, err)
}

func TestCleanupUnfinishedTempFolders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "12_tmp"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "13_tmp"), nil, 0644))

	removed := CleanupUnfinishedTempFolders(dir)
	assert.Equal(t, []string{filepath.Join(dir, "12_tmp")}, removed)

	assert.NoDirExists(t, filepath.Join(dir, "12_tmp"))
	assert.DirExists(t, filepath.Join(dir, "keep"))
	assert.FileExists(t, filepath.Join(dir, "13_tmp"))
}

func TestRemoveIfEmpty(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(empty, 0755))

	assert.True(t, RemoveIfEmpty(empty))
	assert.NoDirExists(t, empty)
	assert.False(t, RemoveIfEmpty(dir+"/missing"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), nil, 0644))
	assert.False(t, RemoveIfEmpty(dir))
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.50 KB", Human(1536))
	assert.Equal(t, "5.00 MB", Human(5<<20))
	assert.Equal(t, "3.00 GB", Human(3<<30))
	assert.Equal(t, "2048.00 GB", Human(2<<40))
}
