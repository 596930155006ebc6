// Package manga1000 implements a providers.Source for manga1000.com, a
// WordPress-based aggregator. Pages are fetched through the host's
// providers.Scheduler and scraped with fixed CSS selectors.
package manga1000
