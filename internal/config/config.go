package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultImageWorkers   = 5
	defaultChapterWorkers = 2
	defaultTimeout        = 30
	defaultRetries        = 3
)

type Config struct {
	BaseURL        string `yaml:"base_url"`
	Output         string `yaml:"output"`
	ImageWorkers   int    `yaml:"image_workers"`
	ChapterWorkers int    `yaml:"chapter_workers"`
	KeepFolders    bool   `yaml:"keep_folders"`
	Debug          bool   `yaml:"debug"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`

	SkipBroken       bool `yaml:"skip_broken"`
	TimeoutSeconds   int  `yaml:"timeout_seconds"`
	Retries          int  `yaml:"retries"`
	BypassCloudflare bool `yaml:"bypass_cloudflare"`
}

// Options are command-line overrides. Zero values leave the loaded config alone.
type Options struct {
	IgnoreConfig     bool
	BaseURL          string
	Debug            bool
	Output           string
	ImageWorkers     int
	ChapterWorkers   int
	KeepFolders      bool
	Cookie           string
	CookieFile       string
	UserAgent        string
	SkipBroken       bool
	TimeoutSeconds   int
	Retries          int
	BypassCloudflare bool
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "",
		Output:         ".",
		ImageWorkers:   defaultImageWorkers,
		ChapterWorkers: defaultChapterWorkers,
		TimeoutSeconds: defaultTimeout,
		Retries:        defaultRetries,
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func LoadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return c, nil
}

// LoadMerged resolves the active profile, applies opts on top and fills in
// defaults. The returned string describes where the config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) || (err == nil && activePath == "") {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.ImageWorkers != 0 {
		c.ImageWorkers = o.ImageWorkers
	}
	if o.ChapterWorkers != 0 {
		c.ChapterWorkers = o.ChapterWorkers
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.Retries != 0 {
		c.Retries = o.Retries
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}

	c.KeepFolders = c.KeepFolders || o.KeepFolders
	c.Debug = c.Debug || o.Debug
	c.SkipBroken = c.SkipBroken || o.SkipBroken
	c.BypassCloudflare = c.BypassCloudflare || o.BypassCloudflare
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "."
	}
	if c.ImageWorkers <= 0 {
		c.ImageWorkers = defaultImageWorkers
	}
	if c.ChapterWorkers <= 0 {
		c.ChapterWorkers = defaultChapterWorkers
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeout
	}
	if c.Retries <= 0 {
		c.Retries = 1
	}
}

// Print lists the settings that differ from their zero value.
func (c *Config) Print(w io.Writer) {
	if c.BaseURL != "" {
		fmt.Fprintf(w, " -base_url: %s\n", c.BaseURL)
	}
	if c.Output != "" {
		fmt.Fprintf(w, " -output: %s\n", c.Output)
	}
	fmt.Fprintf(w, " -image_workers: %d\n", c.ImageWorkers)
	fmt.Fprintf(w, " -chapter_workers: %d\n", c.ChapterWorkers)
	fmt.Fprintf(w, " -timeout_seconds: %d\n", c.TimeoutSeconds)
	fmt.Fprintf(w, " -retries: %d\n", c.Retries)
	if c.KeepFolders {
		fmt.Fprintf(w, " -keep_folders: %t\n", c.KeepFolders)
	}
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.CookieFile != "" {
		fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.SkipBroken {
		fmt.Fprintf(w, " -skip_broken: %t\n", c.SkipBroken)
	}
	if c.BypassCloudflare {
		fmt.Fprintf(w, " -bypass_cloudflare: %t\n", c.BypassCloudflare)
	}
}
