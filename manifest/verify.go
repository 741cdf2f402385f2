package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/sectreg/discovery"
	"github.com/vk/sectreg/internal/ctxlog"
	"github.com/vk/sectreg/section"
)

// Verify performs a parity check between a manifest and a discovery
// snapshot. Every non-optional declaration must be present in the snapshot
// and resolved to a type. In strict mode, discovered entries absent from the
// manifest also fail the check; otherwise they are logged as warnings.
func Verify(ctx context.Context, snap *discovery.Snapshot, m *Manifest, strict bool) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	check := func(cat section.Category, decls []*Declaration) {
		declared := make(map[string]struct{}, len(decls))
		for _, decl := range decls {
			name := decl.Name()
			declared[name] = struct{}{}

			entry, ok := snap.Lookup(cat, name)
			if !ok {
				if decl.Optional {
					logger.Debug("Optional declaration absent from image.", "category", cat.String(), "name", name)
					continue
				}
				errs = append(errs, fmt.Sprintf("%s '%s': declared in manifest but not present in the image", cat, name))
				continue
			}
			if !entry.Resolved {
				if decl.Optional {
					logger.Debug("Optional declaration present but unresolved.", "category", cat.String(), "name", name)
					continue
				}
				errs = append(errs, fmt.Sprintf("%s '%s': present in the image but did not resolve to a type", cat, name))
			}
		}

		var entries []discovery.Entry
		switch cat {
		case section.CategoryModule:
			entries = snap.Modules
		case section.CategoryService:
			entries = snap.Services
		}
		for _, entry := range entries {
			if _, ok := declared[entry.Name]; ok {
				continue
			}
			if strict {
				errs = append(errs, fmt.Sprintf("%s '%s': present in the image but not declared in the manifest", cat, entry.Name))
			} else {
				logger.Warn("Discovered entry is not declared in the manifest.", "category", cat.String(), "name", entry.Name)
			}
		}
	}

	check(section.CategoryModule, m.Modules)
	check(section.CategoryService, m.Services)

	if len(errs) > 0 {
		return fmt.Errorf("manifest verification failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
