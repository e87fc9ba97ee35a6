package core

import (
	"context"
	"fmt"
	"strings"

	"mcl/internal/backend"
	"mcl/internal/domain"
	"mcl/internal/notify"
)

// maxSkippedListed caps how many skipped add-on names the summary
// notification spells out before collapsing the rest into a count.
const maxSkippedListed = 10

// PackInstaller installs curated add-on packs through the backend and turns
// the partial-failure result into user notifications.
type PackInstaller struct {
	backend backend.Client
	center  *notify.Center
}

// NewPackInstaller creates an installer over the given backend.
func NewPackInstaller(b backend.Client, center *notify.Center) *PackInstaller {
	return &PackInstaller{backend: b, center: center}
}

// Install resolves the pack's slug list for the loader and asks the backend
// to install everything in one call. A pack with no entries for the loader
// is reported as incompatible without contacting the backend. Partial
// results always notify success for what installed, plus a second
// notification naming what was skipped.
func (p *PackInstaller) Install(ctx context.Context, pack domain.CuratedPack, mcVersion string, loader domain.Loader) (domain.InstallResult, error) {
	slugs := pack.SlugsFor(loader)
	if len(slugs) == 0 {
		p.center.Info("Pack not compatible", "%s has no add-ons for the %s loader.", pack.Name, loader)
		return domain.InstallResult{}, nil
	}

	result, err := p.backend.InstallPack(ctx, slugs, mcVersion, loader)
	if err != nil {
		p.center.Error("Pack install failed", "%s: %s", pack.Name, err.Error())
		return domain.InstallResult{}, fmt.Errorf("installing pack %s: %w", pack.Name, err)
	}

	p.center.Success("Pack installed", "%s: %d add-ons installed", pack.Name, len(result.Installed))

	if len(result.Skipped) > 0 {
		p.center.Info("Some add-ons skipped", "%s", skippedSummary(result.Skipped, mcVersion))
	}
	return result, nil
}

// skippedSummary names up to maxSkippedListed skipped add-ons, collapsing
// the remainder into a count.
func skippedSummary(skipped []string, mcVersion string) string {
	listed := skipped
	extra := 0
	if len(listed) > maxSkippedListed {
		extra = len(listed) - maxSkippedListed
		listed = listed[:maxSkippedListed]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d add-ons had no compatible version for %s: ", len(skipped), mcVersion)
	b.WriteString(strings.Join(listed, ", "))
	if extra > 0 {
		fmt.Fprintf(&b, " … +%d more", extra)
	}
	return b.String()
}
