package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool

	// connection
	flagBaseURL          string
	flagTimeout          int
	flagRetries          int
	flagCookie           string
	flagCookieFile       string
	flagUserAgent        string
	flagBypassCloudflare bool
)

var rootCmd = &cobra.Command{
	Use:           "manga1000",
	Short:         "Browse and download manga from manga1000.com",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")

	pf.StringVar(&flagBaseURL, "base-url", "", "site root, for mirrors (default https://manga1000.com)")
	pf.IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	pf.IntVar(&flagRetries, "retries", 0, "attempts per page request")
	pf.StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	pf.BoolVar(&flagBypassCloudflare, "bypass-cloudflare", false, "mimic a browser TLS handshake to pass Cloudflare checks")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
