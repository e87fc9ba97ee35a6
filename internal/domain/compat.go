package domain

// CanInstall decides whether installing an add-on of the given kind is
// permitted on an instance running the given loader. Mods need a mod-capable
// loader; resource packs and shader packs work on any loader.
//
// Both the browser's download control and the curated-pack install path go
// through this single predicate.
func CanInstall(loader Loader, kind AddonKind) bool {
	if kind == KindMod {
		return loader.Modded()
	}
	return true
}
