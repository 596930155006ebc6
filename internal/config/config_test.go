package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	return filepath.Join(dir, appName)
}

func TestLoadMergedWithoutProfile(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadMerged(Options{Output: "out", Retries: 5})
	require.NoError(t, err)
	assert.Equal(t, "(default config in memory)", src)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, defaultImageWorkers, cfg.ImageWorkers)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	isolate(t)
	_, err := InitDefaultConfig()
	require.NoError(t, err)

	cfg, src, err := LoadMerged(Options{IgnoreConfig: true, Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", src)
	assert.True(t, cfg.Debug)
}

func TestLoadMergedActiveProfile(t *testing.T) {
	root := isolate(t)

	path, err := CreateEmptyConfig("mirror")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "mirror.yaml"), path)

	yaml := "base_url: https://mirror.example\nimage_workers: 9\nskip_broken: true\ntimeout_seconds: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	require.NoError(t, SwitchConfig("mirror"))

	cfg, src, err := LoadMerged(Options{ImageWorkers: 2, BypassCloudflare: true})
	require.NoError(t, err)
	assert.Equal(t, path, src)
	assert.Equal(t, "https://mirror.example", cfg.BaseURL)
	assert.Equal(t, 2, cfg.ImageWorkers)
	assert.Equal(t, defaultChapterWorkers, cfg.ChapterWorkers)
	assert.Equal(t, defaultTimeout, cfg.TimeoutSeconds)
	assert.True(t, cfg.SkipBroken)
	assert.True(t, cfg.BypassCloudflare)
}

func TestLoadMergedBrokenYAML(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("image_workers: [\n"), 0644))

	_, _, err = LoadMerged(Options{})
	assert.Error(t, err)
}

func TestProfiles(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	_, err = InitDefaultConfig()
	assert.ErrorIs(t, err, os.ErrExist)

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label)

	src := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(src, []byte("debug: true\n"), 0644))
	require.NoError(t, AddConfig("other", src))
	assert.Error(t, AddConfig("other", src))

	require.NoError(t, SwitchConfig("other"))
	require.NoError(t, RenameConfig("other", "renamed"))

	label, err = CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "renamed", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.Equal(t, "renamed", list[1].Label)
	assert.True(t, list[1].Active)

	_, err = RemoveConfig(DefaultLabel)
	assert.Error(t, err)

	switched, err := RemoveConfig("renamed")
	require.NoError(t, err)
	assert.True(t, switched)

	label, err = CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label)

	assert.Error(t, SwitchConfig("missing"))
	assert.Error(t, SwitchConfig(" "))
}

func TestResetConfig(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("image_workers: 40\n"), 0644))

	require.NoError(t, ResetConfig(DefaultLabel))

	cfg, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, defaultImageWorkers, cfg.ImageWorkers)

	assert.Error(t, ResetConfig("nope"))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.BaseURL = "https://manga1000.com"
	cfg.SkipBroken = true
	cfg.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, " -base_url: https://manga1000.com\n")
	assert.Contains(t, out, " -skip_broken: true\n")
	assert.NotContains(t, out, "keep_folders")
}
