package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mcl/internal/domain"

	"github.com/go-resty/resty/v2"
)

const (
	baseURL   = "https://api.modrinth.com/v2"
	userAgent = "mcl-launcher"

	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// Client talks to the Modrinth registry. All methods are read-only; installs
// go through the backend, which downloads the files it picks.
type Client struct {
	http *resty.Client
}

// NewClient creates a registry client with sane timeouts.
func NewClient() *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("User-Agent", userAgent).
			SetTimeout(15 * time.Second),
	}
}

// SetBaseURL overrides the registry endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

// Search queries the registry for add-ons of the given kind. For mods on a
// modded loader the loader is added as a category facet; resource packs and
// shaders are loader-independent and never filtered by it.
func (c *Client) Search(ctx context.Context, query string, kind domain.AddonKind, limit int, loader domain.Loader) ([]domain.AddonRef, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	facets := [][]string{{"project_type:" + string(kind)}}
	if kind == domain.KindMod && loader.Modded() {
		facets = append(facets, []string{"categories:" + string(loader)})
	}
	rawFacets, err := json.Marshal(facets)
	if err != nil {
		return nil, fmt.Errorf("encoding facets: %w", err)
	}

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":  query,
			"facets": string(rawFacets),
			"limit":  strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("searching registry: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("searching registry: %s", resp.Status())
	}

	refs := make([]domain.AddonRef, 0, len(result.Hits))
	for _, hit := range result.Hits {
		refs = append(refs, domain.AddonRef{
			ID:          hit.ProjectID,
			Slug:        hit.Slug,
			Title:       hit.Title,
			Description: hit.Description,
			Downloads:   hit.Downloads,
			IconURL:     hit.IconURL,
		})
	}
	return refs, nil
}

// Project fetches a single project by id or slug.
func (c *Client) Project(ctx context.Context, idOrSlug string) (domain.AddonRef, error) {
	var p project
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&p).
		Get("/project/" + idOrSlug)
	if err != nil {
		return domain.AddonRef{}, fmt.Errorf("fetching project %s: %w", idOrSlug, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domain.AddonRef{}, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, idOrSlug)
	}
	if resp.IsError() {
		return domain.AddonRef{}, fmt.Errorf("fetching project %s: %s", idOrSlug, resp.Status())
	}

	return domain.AddonRef{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Downloads:   p.Downloads,
		IconURL:     p.IconURL,
	}, nil
}

// Versions lists a project's published versions, newest first.
func (c *Client) Versions(ctx context.Context, idOrSlug string) ([]Version, error) {
	var versions []Version
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&versions).
		Get("/project/" + idOrSlug + "/version")
	if err != nil {
		return nil, fmt.Errorf("fetching versions for %s: %w", idOrSlug, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, idOrSlug)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching versions for %s: %s", idOrSlug, resp.Status())
	}
	return versions, nil
}

// PickVersion chooses the best version for the target game version and
// loader. An exact game-version match wins; otherwise a version on the same
// major.minor line with a patch at or below the target is acceptable (mods
// are usually compatible forward within a minor line). The loader filter is
// skipped for vanilla targets, where only loader-independent content
// (resource packs, shaders) reaches this point.
func PickVersion(versions []Version, mcVersion string, loader domain.Loader) (Version, error) {
	matchesLoader := func(v Version) bool {
		if !loader.Modded() {
			return true
		}
		for _, l := range v.Loaders {
			if strings.EqualFold(l, string(loader)) {
				return true
			}
		}
		return false
	}

	for _, v := range versions {
		if !matchesLoader(v) {
			continue
		}
		for _, gv := range v.GameVersions {
			if gv == mcVersion {
				return v, nil
			}
		}
	}

	targetMajor, targetMinor, targetPatch, ok := splitVersion(mcVersion)
	if ok {
		for _, v := range versions {
			if !matchesLoader(v) {
				continue
			}
			for _, gv := range v.GameVersions {
				major, minor, patch, ok := splitVersion(gv)
				if ok && major == targetMajor && minor == targetMinor && patch <= targetPatch {
					return v, nil
				}
			}
		}
	}

	return Version{}, fmt.Errorf("%w: %s on %s", domain.ErrNoCompatibleVersion, mcVersion, loader)
}

// splitVersion parses "1.21.4" style version ids. A missing patch component
// is zero; snapshots and other non-numeric ids are rejected.
func splitVersion(v string) (major, minor, patch int, ok bool) {
	parts := strings.Split(v, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
