package bayutfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

type Config struct {
	// BaseURL - "https://bayut.p.rapidapi.com"
	BaseURL             string
	APIKey              string
	APIHost             string
	LocationExternalIDs string
	// Parallelism и RandomDelay ограничивают нагрузку на внешний API для всех клонов коллектора.
	Parallelism int
	RandomDelay time.Duration
	Timeout     time.Duration
}

// BayutFetcherAdapter ходит в /properties/list внешнего API через colly.
type BayutFetcherAdapter struct {
	// родительский коллектор, его лимиты наследуют все клоны
	collector *colly.Collector
	listURL   *url.URL
	cfg       Config
}

func NewBayutFetcherAdapter(cfg Config) (*BayutFetcherAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("BayutFetcherAdapter: API key is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Hostname() == "" {
		return nil, fmt.Errorf("BayutFetcherAdapter: invalid base URL %q", cfg.BaseURL)
	}
	if cfg.APIHost == "" {
		cfg.APIHost = base.Host
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}

	c := colly.NewCollector(
		colly.AllowedDomains(base.Hostname()),
		colly.AllowURLRevisit(),
	)
	if cfg.Timeout > 0 {
		c.SetRequestTimeout(cfg.Timeout)
	}
	err = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: cfg.Parallelism,
		RandomDelay: cfg.RandomDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("BayutFetcherAdapter: failed to set limit rule: %w", err)
	}

	return &BayutFetcherAdapter{
		collector: c,
		listURL:   base.JoinPath("properties", "list"),
		cfg:       cfg,
	}, nil
}
