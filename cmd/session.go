package cmd

import (
	"maps"
	"net/http"
	"time"

	"github.com/brogergvhs/manga1000/internal/config"
	"github.com/brogergvhs/manga1000/internal/providers/manga1000"
	"github.com/brogergvhs/manga1000/internal/ui"
	"github.com/brogergvhs/manga1000/internal/util"

	"github.com/spf13/cobra"
)

const retryBackoff = time.Second

// session is everything a command needs to talk to the site.
type session struct {
	cfg     *config.Config
	cfgPath string
	log     *ui.Logger
	client  *http.Client
	source  *manga1000.Source
	headers map[string]string
}

// loadConfig merges the active profile with the persistent flags and the
// extra per-command overrides in opts.
func loadConfig(opts config.Options) (*config.Config, string, error) {
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = flagDebug
	opts.BaseURL = flagBaseURL
	opts.TimeoutSeconds = flagTimeout
	opts.Retries = flagRetries
	opts.Cookie = flagCookie
	opts.CookieFile = flagCookieFile
	opts.UserAgent = flagUserAgent
	opts.BypassCloudflare = flagBypassCloudflare

	return config.LoadMerged(opts)
}

func newSession(cmd *cobra.Command, opts config.Options) (*session, error) {
	cfg, used, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	log := ui.NewLoggerTo(cmd.ErrOrStderr(), cfg.Debug)
	log.Debugf("Config file: %s\n", used)

	// Filled once the source exists; the client reads it per request.
	headers := map[string]string{}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		Headers:          headers,
		BypassCloudflare: cfg.BypassCloudflare,
		DebugLogger:      log,
	})
	if err != nil {
		return nil, err
	}

	sched := util.NewScheduler(client, cfg.Retries, retryBackoff, log)

	srcOpts := []manga1000.Option{manga1000.WithLogger(log)}
	if cfg.BaseURL != "" {
		srcOpts = append(srcOpts, manga1000.WithBaseURL(cfg.BaseURL))
	}
	src := manga1000.New(sched, srcOpts...)
	maps.Copy(headers, src.GlobalRequestHeaders())

	return &session{
		cfg:     cfg,
		cfgPath: used,
		log:     log,
		client:  client,
		source:  src,
		headers: headers,
	}, nil
}

func (s *session) referer() string {
	return s.headers["referer"]
}
