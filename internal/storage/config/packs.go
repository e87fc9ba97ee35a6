package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcl/internal/domain"

	"gopkg.in/yaml.v3"
)

// packsFile is the curated pack table. Packs are static data, not code:
// editing the yaml is the only way to change what a pack installs.
const packsFile = "packs.yaml"

type packsDocument struct {
	Packs []domain.CuratedPack `yaml:"packs"`
}

// DefaultPacks returns the built-in curated pack table, used when no
// packs.yaml exists. Slugs are registry slugs; only fabric has curated
// mod lists since vanilla cannot load mods.
func DefaultPacks() []domain.CuratedPack {
	return []domain.CuratedPack{
		{
			Name:        "Performance",
			Description: "FPS and load-time improvements",
			SlugsByLoader: map[domain.Loader][]string{
				domain.LoaderFabric: {
					"sodium",
					"lithium",
					"ferrite-core",
					"entityculling",
					"immediatelyfast",
					"modernfix",
				},
			},
		},
		{
			Name:        "Quality of Life",
			Description: "Interface and convenience mods",
			SlugsByLoader: map[domain.Loader][]string{
				domain.LoaderFabric: {
					"modmenu",
					"appleskin",
					"jade",
					"zoomify",
					"mouse-tweaks",
				},
			},
		},
		{
			Name:        "Shaders Ready",
			Description: "Shader loader plus a starter shader pack",
			SlugsByLoader: map[domain.Loader][]string{
				domain.LoaderFabric: {
					"iris",
					"sodium",
					"complementary-reimagined",
				},
			},
		},
	}
}

// LoadPacks reads the curated pack table from the config directory,
// falling back to the built-in defaults when no file exists.
func LoadPacks(configDir string) ([]domain.CuratedPack, error) {
	data, err := os.ReadFile(filepath.Join(configDir, packsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPacks(), nil
		}
		return nil, fmt.Errorf("reading packs: %w", err)
	}

	var doc packsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing packs: %w", err)
	}

	if len(doc.Packs) == 0 {
		return DefaultPacks(), nil
	}
	return doc.Packs, nil
}

// SavePacks writes the curated pack table to the config directory.
func SavePacks(configDir string, packs []domain.CuratedPack) error {
	data, err := yaml.Marshal(packsDocument{Packs: packs})
	if err != nil {
		return fmt.Errorf("marshaling packs: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, packsFile), data, 0644); err != nil {
		return fmt.Errorf("writing packs: %w", err)
	}
	return nil
}

// FindPack returns the named pack from the list, matching case-insensitively.
func FindPack(packs []domain.CuratedPack, name string) (domain.CuratedPack, error) {
	for _, p := range packs {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return domain.CuratedPack{}, fmt.Errorf("%w: %s", domain.ErrPackNotFound, name)
}
