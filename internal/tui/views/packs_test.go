package views_test

import (
	"testing"

	"mcl/internal/domain"
	"mcl/internal/tui/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func curated() []domain.CuratedPack {
	return []domain.CuratedPack{
		{Name: "Performance", SlugsByLoader: map[domain.Loader][]string{
			domain.LoaderFabric: {"sodium", "lithium"},
		}},
		{Name: "Shaders Ready", SlugsByLoader: map[domain.Loader][]string{
			domain.LoaderFabric: {"iris"},
		}},
	}
}

func TestPacksEnterEmitsInstall(t *testing.T) {
	view := views.NewPacks(curated(), domain.LoaderFabric)

	_, cmd := view.Update(keyMsg("enter"))
	msg := collect(cmd)
	require.IsType(t, views.InstallPackMsg{}, msg)
	assert.Equal(t, "Performance", msg.(views.InstallPackMsg).Pack.Name)
}

func TestPacksNavigation(t *testing.T) {
	view := views.NewPacks(curated(), domain.LoaderFabric)

	model, _ := view.Update(keyMsg("j"))
	view = model.(views.Packs)
	assert.Equal(t, "Shaders Ready", view.Highlighted().Name)

	model, _ = view.Update(keyMsg("j"))
	view = model.(views.Packs)
	assert.Equal(t, "Performance", view.Highlighted().Name)
}

func TestPacksViewShowsLoaderMismatch(t *testing.T) {
	view := views.NewPacks(curated(), domain.LoaderVanilla)
	out := view.View()
	assert.Contains(t, out, "0 add-ons")
	assert.Contains(t, out, "vanilla loader")
}

func TestInstancesSelectAndDelete(t *testing.T) {
	view := views.NewInstances([]domain.Instance{
		{ID: "a", Name: "Main"},
		{ID: "b", Name: "Modded", Loader: domain.LoaderFabric},
	}, "a")

	_, cmd := view.Update(keyMsg("enter"))
	msg := collect(cmd)
	require.IsType(t, views.SelectInstanceMsg{}, msg)
	assert.Equal(t, "a", msg.(views.SelectInstanceMsg).InstanceID)

	model, _ := view.Update(keyMsg("j"))
	view = model.(views.Instances)

	_, cmd = view.Update(keyMsg("d"))
	msg = collect(cmd)
	require.IsType(t, views.DeleteInstanceMsg{}, msg)
	assert.Equal(t, "b", msg.(views.DeleteInstanceMsg).InstanceID)
}

func TestInstancesReload(t *testing.T) {
	view := views.NewInstances(nil, "")

	model, _ := view.Update(views.InstancesLoadedMsg{
		Instances:  []domain.Instance{{ID: "a", Name: "Main"}},
		SelectedID: "a",
	})
	view = model.(views.Instances)
	require.NotNil(t, view.Highlighted())
	assert.Contains(t, view.View(), "active")
}

func TestNewsLoadedAndError(t *testing.T) {
	view := views.NewNews()
	assert.Contains(t, view.View(), "Loading")

	model, _ := view.Update(views.NewsLoadedMsg{Items: []domain.NewsItem{
		{Title: "Minecraft 1.21.4", Date: "2026-01-01", Summary: "Bug fixes"},
	}})
	view = model.(views.News)
	out := view.View()
	assert.Contains(t, out, "Minecraft 1.21.4")
	assert.Contains(t, out, "Bug fixes")

	model, _ = view.Update(views.NewsErrorMsg{Err: assert.AnError})
	view = model.(views.News)
	assert.Contains(t, view.View(), "Error")
}
