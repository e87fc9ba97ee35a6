package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mcl/internal/core"
	"mcl/internal/domain"
	"mcl/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfPack() domain.CuratedPack {
	return domain.CuratedPack{
		Name: "Performance",
		SlugsByLoader: map[domain.Loader][]string{
			domain.LoaderFabric: {"sodium", "lithium", "ferrite-core"},
		},
	}
}

func TestInstallPackAllSucceed(t *testing.T) {
	fb := &fakeBackend{installResult: domain.InstallResult{
		Installed: []string{"sodium", "lithium", "ferrite-core"},
	}}
	center := notify.NewCenter()
	installer := core.NewPackInstaller(fb, center)

	result, err := installer.Install(context.Background(), perfPack(), "1.21.4", domain.LoaderFabric)
	require.NoError(t, err)
	assert.Len(t, result.Installed, 3)

	history := center.History()
	require.Len(t, history, 1, "no skipped notification when everything installed")
	assert.Equal(t, notify.LevelSuccess, history[0].Level)
	assert.Contains(t, history[0].Message, "Performance: 3 add-ons installed")
}

func TestInstallPackPartialSkip(t *testing.T) {
	fb := &fakeBackend{installResult: domain.InstallResult{
		Installed: []string{"sodium"},
		Skipped:   []string{"lithium", "ferrite-core"},
	}}
	center := notify.NewCenter()
	installer := core.NewPackInstaller(fb, center)

	result, err := installer.Install(context.Background(), perfPack(), "1.21.4", domain.LoaderFabric)
	require.NoError(t, err)
	assert.Equal(t, []string{"lithium", "ferrite-core"}, result.Skipped)

	history := center.History()
	require.Len(t, history, 2)
	assert.Equal(t, notify.LevelSuccess, history[0].Level)
	assert.Contains(t, history[0].Message, "1 add-ons installed")
	assert.Equal(t, notify.LevelInfo, history[1].Level)
	assert.Contains(t, history[1].Message, "no compatible version for 1.21.4")
	assert.Contains(t, history[1].Message, "lithium, ferrite-core")
}

func TestInstallPackSkippedListCapped(t *testing.T) {
	var skipped []string
	for i := 0; i < 14; i++ {
		skipped = append(skipped, fmt.Sprintf("mod-%02d", i))
	}
	fb := &fakeBackend{installResult: domain.InstallResult{Skipped: skipped}}
	center := notify.NewCenter()
	installer := core.NewPackInstaller(fb, center)

	_, err := installer.Install(context.Background(), perfPack(), "1.20.1", domain.LoaderFabric)
	require.NoError(t, err)

	history := center.History()
	require.Len(t, history, 2)
	msg := history[1].Message
	assert.Contains(t, msg, "mod-09")
	assert.NotContains(t, msg, "mod-10")
	assert.Contains(t, msg, "… +4 more")
}

func TestInstallPackIncompatibleLoader(t *testing.T) {
	fb := &fakeBackend{}
	center := notify.NewCenter()
	installer := core.NewPackInstaller(fb, center)

	result, err := installer.Install(context.Background(), perfPack(), "1.21.4", domain.LoaderVanilla)
	require.NoError(t, err)
	assert.Empty(t, result.Installed)
	assert.Empty(t, fb.calls, "an incompatible pack never reaches the backend")

	latest, ok := center.Latest()
	require.True(t, ok)
	assert.Contains(t, latest.Message, "no add-ons for the vanilla loader")
}

func TestInstallPackBackendFailure(t *testing.T) {
	fb := &fakeBackend{installErr: errors.New("backend connection lost")}
	center := notify.NewCenter()
	installer := core.NewPackInstaller(fb, center)

	_, err := installer.Install(context.Background(), perfPack(), "1.21.4", domain.LoaderFabric)
	require.Error(t, err)

	latest, ok := center.Latest()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, latest.Level)
}
