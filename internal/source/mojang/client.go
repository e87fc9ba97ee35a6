package mojang

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mcl/internal/domain"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	manifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest_v2.json"
	newsURL     = "https://launchercontent.mojang.com/v2/javaPatchNotes.json"

	maxNewsItems = 25
)

// fallbackVersions keeps the version picker usable when the manifest is
// unreachable (offline first run, Mojang outage).
var fallbackVersions = []string{
	"1.21.4", "1.21.3", "1.21.1", "1.20.6", "1.20.4", "1.20.1",
	"1.19.4", "1.19.2", "1.18.2", "1.17.1", "1.16.5", "1.12.2", "1.8.9",
}

// Client fetches launcher metadata from Mojang: the game version manifest
// and the patch-notes news feed.
type Client struct {
	http        *resty.Client
	manifestURL string
	newsURL     string
}

func NewClient() *Client {
	return &Client{
		http:        resty.New().SetTimeout(15 * time.Second),
		manifestURL: manifestURL,
		newsURL:     newsURL,
	}
}

// SetURLs overrides the upstream endpoints. Used by tests.
func (c *Client) SetURLs(manifest, news string) {
	c.manifestURL = manifest
	c.newsURL = news
}

// Versions returns release version ids, newest first, cut off below 1.8.9
// (older releases predate the launcher format the backend supports). When
// the manifest cannot be fetched a static fallback list is returned so the
// instance editor stays usable.
func (c *Client) Versions(ctx context.Context) []string {
	resp, err := c.http.R().SetContext(ctx).Get(c.manifestURL)
	if err != nil || resp.IsError() {
		return fallbackVersions
	}

	var out []string
	gjson.GetBytes(resp.Body(), "versions").ForEach(func(_, v gjson.Result) bool {
		if v.Get("type").String() != "release" {
			return true
		}
		id := v.Get("id").String()
		if supportedRelease(id) {
			out = append(out, id)
		}
		return true
	})
	if len(out) == 0 {
		return fallbackVersions
	}
	return out
}

// LatestRelease returns the manifest's latest release id.
func (c *Client) LatestRelease(ctx context.Context) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.manifestURL)
	if err != nil {
		return "", fmt.Errorf("fetching version manifest: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching version manifest: %s", resp.Status())
	}

	latest := gjson.GetBytes(resp.Body(), "latest.release").String()
	if latest == "" {
		return "", fmt.Errorf("version manifest has no latest release")
	}
	return latest, nil
}

// ResolveVersion maps the empty string and the "latest" sentinel to the
// newest release; concrete ids pass through unchanged.
func (c *Client) ResolveVersion(ctx context.Context, v string) (string, error) {
	if v == "" || strings.EqualFold(v, domain.VersionLatest) {
		return c.LatestRelease(ctx)
	}
	return v, nil
}

// News fetches launcher news entries. Feed entries are tolerated in several
// field spellings; anything without a title is dropped.
func (c *Client) News(ctx context.Context, limit int) ([]domain.NewsItem, error) {
	if limit <= 0 || limit > maxNewsItems {
		limit = maxNewsItems
	}

	resp, err := c.http.R().SetContext(ctx).Get(c.newsURL)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching news: %s", resp.Status())
	}

	var items []domain.NewsItem
	gjson.GetBytes(resp.Body(), "entries").ForEach(func(_, e gjson.Result) bool {
		title := e.Get("title").String()
		if title == "" {
			return true
		}
		items = append(items, domain.NewsItem{
			Title:   title,
			Summary: firstOf(e, "shortText", "text"),
			URL:     firstOf(e, "readMoreLink", "url", "link"),
			Date:    firstOf(e, "date", "timestamp"),
		})
		return len(items) < limit
	})
	return items, nil
}

func firstOf(e gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := e.Get(k).String(); v != "" {
			return v
		}
	}
	return ""
}

// supportedRelease reports whether a release id is 1.8.9 or newer.
func supportedRelease(id string) bool {
	parts := strings.Split(id, ".")
	if len(parts) < 2 {
		return false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if i > 2 {
			break
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return false
		}
		nums[i] = n
	}

	switch {
	case nums[0] != 1:
		return nums[0] > 1
	case nums[1] != 8:
		return nums[1] > 8
	default:
		return nums[2] >= 9
	}
}
