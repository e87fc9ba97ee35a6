package main

import (
	"fmt"
	"strings"

	"mcl/internal/domain"
)

// findInstance resolves an instance by id or (case-insensitive) name.
func findInstance(instances []domain.Instance, idOrName string) (domain.Instance, error) {
	for _, inst := range instances {
		if inst.ID == idOrName {
			return inst, nil
		}
	}
	for _, inst := range instances {
		if strings.EqualFold(inst.Name, idOrName) {
			return inst, nil
		}
	}
	return domain.Instance{}, fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, idOrName)
}

// formatDownloads renders a download count compactly (1234567 -> "1.2M").
func formatDownloads(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
