package domain

import "strings"

// VersionLatest is the sentinel version meaning "current latest release".
// An instance with no pinned version resolves to it at launch/install time.
const VersionLatest = "latest"

// Loader is the mod-loading runtime variant of an instance.
type Loader string

const (
	LoaderVanilla Loader = "vanilla"
	LoaderFabric  Loader = "fabric"
)

// ParseLoader normalizes arbitrary loader input. Anything unrecognized
// falls back to vanilla, matching the backend's behaviour.
func ParseLoader(s string) Loader {
	switch Loader(strings.ToLower(s)) {
	case LoaderFabric:
		return LoaderFabric
	default:
		return LoaderVanilla
	}
}

// Modded reports whether the loader can load mods at all.
func (l Loader) Modded() bool {
	return l != LoaderVanilla
}

// AddonKind is the content type of an installable add-on.
type AddonKind string

const (
	KindMod          AddonKind = "mod"
	KindResourcePack AddonKind = "resourcepack"
	KindShader       AddonKind = "shader"
)

// ParseKind normalizes a kind string; unknown values default to mod.
func ParseKind(s string) AddonKind {
	switch AddonKind(strings.ToLower(s)) {
	case KindResourcePack:
		return KindResourcePack
	case KindShader:
		return KindShader
	default:
		return KindMod
	}
}

// AddonRef identifies a single installable unit as returned by registry search.
type AddonRef struct {
	ID          string
	Slug        string
	Title       string
	Description string
	Downloads   int64
	IconURL     string
}

// CuratedPack is a named, pre-selected list of add-on slugs offered as a
// one-click batch install. Slug lists are static configuration keyed by
// loader; a loader with no entry (vanilla) simply has nothing to install.
type CuratedPack struct {
	Name          string              `yaml:"name"`
	Description   string              `yaml:"description"`
	SlugsByLoader map[Loader][]string `yaml:"slugs"`
}

// SlugsFor returns the ordered slug list for the given loader.
func (p CuratedPack) SlugsFor(loader Loader) []string {
	return p.SlugsByLoader[loader]
}

// InstallResult is the partitioned outcome of one batched pack install.
// Installed and Skipped are disjoint and together cover every submitted slug.
type InstallResult struct {
	Installed []string `json:"installed"`
	Skipped   []string `json:"skipped"`
}

// Instance is a launchable game configuration. The backend owns the record;
// the launcher holds a cached copy and pushes edits back explicitly.
type Instance struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	McVersion string `json:"mc_version,omitempty"` // empty means latest
	Loader    Loader `json:"loader"`
	CreatedAt string `json:"created_at,omitempty"`
}

// EffectiveVersion resolves the empty version to the latest sentinel.
func (i Instance) EffectiveVersion() string {
	if i.McVersion == "" {
		return VersionLatest
	}
	return i.McVersion
}

// InstanceMod is a mod file inside an instance's mods folder.
// Disabled mods carry a ".disabled" suffix on disk.
type InstanceMod struct {
	File    string `json:"file"`
	Enabled bool   `json:"enabled"`
}

// Account is the signed-in Minecraft profile.
type Account struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

// NewsItem is one entry from the launcher news feed.
type NewsItem struct {
	Title   string
	Summary string
	URL     string
	Date    string
}
