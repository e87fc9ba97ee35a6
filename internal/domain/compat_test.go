package domain_test

import (
	"testing"

	"mcl/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanInstall(t *testing.T) {
	tests := []struct {
		name   string
		loader domain.Loader
		kind   domain.AddonKind
		want   bool
	}{
		{"mod on fabric", domain.LoaderFabric, domain.KindMod, true},
		{"mod on vanilla", domain.LoaderVanilla, domain.KindMod, false},
		{"resourcepack on vanilla", domain.LoaderVanilla, domain.KindResourcePack, true},
		{"resourcepack on fabric", domain.LoaderFabric, domain.KindResourcePack, true},
		{"shader on vanilla", domain.LoaderVanilla, domain.KindShader, true},
		{"shader on fabric", domain.LoaderFabric, domain.KindShader, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanInstall(tt.loader, tt.kind))
		})
	}
}

func TestParseLoader(t *testing.T) {
	assert.Equal(t, domain.LoaderFabric, domain.ParseLoader("Fabric"))
	assert.Equal(t, domain.LoaderVanilla, domain.ParseLoader("vanilla"))
	assert.Equal(t, domain.LoaderVanilla, domain.ParseLoader(""))
	assert.Equal(t, domain.LoaderVanilla, domain.ParseLoader("forge"))
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, domain.KindMod, domain.ParseKind("mod"))
	assert.Equal(t, domain.KindResourcePack, domain.ParseKind("ResourcePack"))
	assert.Equal(t, domain.KindShader, domain.ParseKind("shader"))
	assert.Equal(t, domain.KindMod, domain.ParseKind("datapack"))
}

func TestInstanceEffectiveVersion(t *testing.T) {
	assert.Equal(t, "latest", domain.Instance{}.EffectiveVersion())
	assert.Equal(t, "1.21.4", domain.Instance{McVersion: "1.21.4"}.EffectiveVersion())
}

func TestCuratedPackSlugsFor(t *testing.T) {
	pack := domain.CuratedPack{
		Name: "Performance",
		SlugsByLoader: map[domain.Loader][]string{
			domain.LoaderFabric: {"sodium", "lithium"},
		},
	}

	assert.Equal(t, []string{"sodium", "lithium"}, pack.SlugsFor(domain.LoaderFabric))
	assert.Empty(t, pack.SlugsFor(domain.LoaderVanilla))
}
