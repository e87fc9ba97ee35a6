package modrinth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcl/internal/domain"
	"mcl/internal/source/modrinth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *modrinth.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := modrinth.NewClient()
	client.SetBaseURL(srv.URL)
	return client
}

func TestSearchFacets(t *testing.T) {
	var gotFacets string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotFacets = r.URL.Query().Get("facets")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"hits": []map[string]any{
				{"project_id": "AANobbMI", "slug": "sodium", "title": "Sodium", "downloads": 1000},
			},
		})
	})

	refs, err := client.Search(context.Background(), "sodium", domain.KindMod, 0, domain.LoaderFabric)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "sodium", refs[0].Slug)

	var facets [][]string
	require.NoError(t, json.Unmarshal([]byte(gotFacets), &facets))
	assert.Equal(t, [][]string{{"project_type:mod"}, {"categories:fabric"}}, facets)
}

func TestSearchShadersSkipLoaderFacet(t *testing.T) {
	var gotFacets string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotFacets = r.URL.Query().Get("facets")
		_ = json.NewEncoder(w).Encode(map[string]any{"hits": []any{}})
	})

	_, err := client.Search(context.Background(), "iris", domain.KindShader, 5, domain.LoaderFabric)
	require.NoError(t, err)

	var facets [][]string
	require.NoError(t, json.Unmarshal([]byte(gotFacets), &facets))
	assert.Equal(t, [][]string{{"project_type:shader"}}, facets)
}

func TestProjectNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Project(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/sodium", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "AANobbMI", "slug": "sodium", "title": "Sodium",
			"description": "Rendering optimization", "downloads": 29000000,
		})
	})

	ref, err := client.Project(context.Background(), "sodium")
	require.NoError(t, err)
	assert.Equal(t, "AANobbMI", ref.ID)
	assert.Equal(t, int64(29000000), ref.Downloads)
}

func pickInput() []modrinth.Version {
	return []modrinth.Version{
		{ID: "v3", GameVersions: []string{"1.21.4"}, Loaders: []string{"fabric"}},
		{ID: "v2", GameVersions: []string{"1.21.1", "1.21.2"}, Loaders: []string{"fabric"}},
		{ID: "v1", GameVersions: []string{"1.20.6"}, Loaders: []string{"forge"}},
	}
}

func TestPickVersionExactMatch(t *testing.T) {
	v, err := modrinth.PickVersion(pickInput(), "1.21.4", domain.LoaderFabric)
	require.NoError(t, err)
	assert.Equal(t, "v3", v.ID)
}

func TestPickVersionSameMinorLine(t *testing.T) {
	// No exact 1.21.3 build; 1.21.2 on the same minor line is acceptable
	v, err := modrinth.PickVersion(pickInput(), "1.21.3", domain.LoaderFabric)
	require.NoError(t, err)
	assert.Equal(t, "v2", v.ID)
}

func TestPickVersionRejectsNewerPatch(t *testing.T) {
	versions := []modrinth.Version{
		{ID: "v1", GameVersions: []string{"1.21.4"}, Loaders: []string{"fabric"}},
	}
	_, err := modrinth.PickVersion(versions, "1.21.2", domain.LoaderFabric)
	assert.ErrorIs(t, err, domain.ErrNoCompatibleVersion)
}

func TestPickVersionLoaderFilter(t *testing.T) {
	versions := []modrinth.Version{
		{ID: "forge-only", GameVersions: []string{"1.21.4"}, Loaders: []string{"forge"}},
	}
	_, err := modrinth.PickVersion(versions, "1.21.4", domain.LoaderFabric)
	assert.ErrorIs(t, err, domain.ErrNoCompatibleVersion)
}

func TestPickVersionVanillaSkipsLoaderFilter(t *testing.T) {
	versions := []modrinth.Version{
		{ID: "pack", GameVersions: []string{"1.21.4"}, Loaders: []string{"minecraft"}},
	}
	v, err := modrinth.PickVersion(versions, "1.21.4", domain.LoaderVanilla)
	require.NoError(t, err)
	assert.Equal(t, "pack", v.ID)
}

func TestPickVersionDifferentMinorLine(t *testing.T) {
	versions := []modrinth.Version{
		{ID: "old", GameVersions: []string{"1.20.4"}, Loaders: []string{"fabric"}},
	}
	_, err := modrinth.PickVersion(versions, "1.21.4", domain.LoaderFabric)
	assert.ErrorIs(t, err, domain.ErrNoCompatibleVersion)
}

func TestPrimaryFile(t *testing.T) {
	v := modrinth.Version{Files: []modrinth.File{
		{Filename: "extra.jar"},
		{Filename: "main.jar", Primary: true},
	}}
	f, ok := v.PrimaryFile()
	require.True(t, ok)
	assert.Equal(t, "main.jar", f.Filename)

	v = modrinth.Version{Files: []modrinth.File{{Filename: "only.jar"}}}
	f, ok = v.PrimaryFile()
	require.True(t, ok)
	assert.Equal(t, "only.jar", f.Filename)

	_, ok = modrinth.Version{}.PrimaryFile()
	assert.False(t, ok)
}
