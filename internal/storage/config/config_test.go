package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"mcl/internal/domain"
	"mcl/internal/storage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBackendAddr, cfg.BackendAddr)
	assert.Equal(t, config.DefaultMsClientID, cfg.MsClientID)
	assert.Empty(t, cfg.NotifyURL)
	assert.Empty(t, cfg.JoinServer)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("backend_addr: ws://10.0.0.5:9000/rpc\nnotify_url: discord://token@channel\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ws://10.0.0.5:9000/rpc", cfg.BackendAddr)
	assert.Equal(t, "discord://token@channel", cfg.NotifyURL)
	// Unset fields still get defaults
	assert.Equal(t, config.DefaultMsClientID, cfg.MsClientID)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{
		BackendAddr: "ws://127.0.0.1:9999/rpc",
		MsClientID:  config.DefaultMsClientID,
		JoinServer:  "play.example.net",
	}
	require.NoError(t, cfg.Save(dir))

	loaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.BackendAddr, loaded.BackendAddr)
	assert.Equal(t, "play.example.net", loaded.JoinServer)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestLoadPacksDefaults(t *testing.T) {
	packs, err := config.LoadPacks(t.TempDir())
	require.NoError(t, err)
	require.NotEmpty(t, packs)

	// Defaults only curate mods for fabric; vanilla has no list
	for _, p := range packs {
		assert.NotEmpty(t, p.SlugsFor(domain.LoaderFabric), p.Name)
		assert.Empty(t, p.SlugsFor(domain.LoaderVanilla), p.Name)
	}
}

func TestPacksRoundTrip(t *testing.T) {
	dir := t.TempDir()

	packs := []domain.CuratedPack{
		{
			Name:        "Starter",
			Description: "A small starter set",
			SlugsByLoader: map[domain.Loader][]string{
				domain.LoaderFabric: {"sodium", "modmenu"},
			},
		},
	}
	require.NoError(t, config.SavePacks(dir, packs))

	loaded, err := config.LoadPacks(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Starter", loaded[0].Name)
	assert.Equal(t, []string{"sodium", "modmenu"}, loaded[0].SlugsFor(domain.LoaderFabric))
}

func TestFindPack(t *testing.T) {
	packs := config.DefaultPacks()

	p, err := config.FindPack(packs, "performance")
	require.NoError(t, err)
	assert.Equal(t, "Performance", p.Name)

	_, err = config.FindPack(packs, "nope")
	assert.ErrorIs(t, err, domain.ErrPackNotFound)
}
