package discovery

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/sectreg/internal/ctxlog"
	"github.com/vk/sectreg/registry"
	"github.com/vk/sectreg/section"
)

// Image provides read access to the section regions of one loaded binary
// unit. *section.Arena implements it.
type Image interface {
	Region(cat section.Category) []byte
}

// Resolver resolves a fully-qualified name to a Go type. A miss is reported
// through the boolean; a Resolver must never abort the scan.
type Resolver interface {
	LookupType(name string) (reflect.Type, bool)
}

// Scanner reads the regions of one image and resolves records against one
// type table. A fresh scan re-reads the same static regions, so repeated
// invocations are idempotent.
type Scanner struct {
	image    Image
	resolver Resolver
}

// NewScanner creates a Scanner over the given image and resolver.
func NewScanner(image Image, resolver Resolver) *Scanner {
	return &Scanner{image: image, resolver: resolver}
}

// defaultScanner scans the running image against the default registry.
var defaultScanner = NewScanner(section.Default(), registry.Default())

// Snapshot is the full result of one scan: every distinct record of each
// category, resolved or explicitly unresolved. The lookup index is built
// completely before the Snapshot is returned and is immutable afterwards, so
// a Snapshot may be shared across goroutines without locking.
type Snapshot struct {
	Modules  []Entry
	Services []Entry

	index map[section.Category]map[string]Entry
}

// Lookup returns the entry for a qualified name within a category.
func (s *Snapshot) Lookup(cat section.Category, name string) (Entry, bool) {
	e, ok := s.index[cat][name]
	return e, ok
}

// splitName separates a decoded record into namespace and type name on the
// final separator, tolerating dotted namespaces. A record with no separator
// at all cannot have come from the emitter and marks the region corrupt.
func splitName(name string) (namespace, typeName string, err error) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", "", fmt.Errorf("%w: record %q is not a namespace.typeName pair", section.ErrMalformedRegion, name)
	}
	return name[:i], name[i+1:], nil
}

// scanCategory decodes one region and produces its de-duplicated, resolved
// entries in first-occurrence scan order.
func (s *Scanner) scanCategory(ctx context.Context, cat section.Category) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx)

	region := s.image.Region(cat)
	if len(region) == 0 {
		// Zero declarations of this category anywhere in the image.
		logger.Debug("Section region absent, treating as empty.", "category", cat.String())
		return nil, nil
	}

	names, err := section.DecodeRegion(region)
	if err != nil {
		return nil, fmt.Errorf("scanning %s region: %w", cat, err)
	}

	seen := make(map[string]struct{}, len(names))
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			logger.Debug("Skipping duplicate registration record.", "category", cat.String(), "name", name)
			continue
		}
		seen[name] = struct{}{}

		namespace, typeName, err := splitName(name)
		if err != nil {
			return nil, fmt.Errorf("scanning %s region: %w", cat, err)
		}

		entry := Entry{
			Name:      name,
			Namespace: namespace,
			TypeName:  typeName,
			Category:  cat,
		}
		if typ, ok := s.resolver.LookupType(name); ok {
			entry.Type = typ
			entry.Resolved = true
		} else {
			logger.Warn("Registration record did not resolve to a type.", "category", cat.String(), "name", name)
		}
		entries = append(entries, entry)
	}

	logger.Debug("Section region scanned.", "category", cat.String(), "records", len(names), "distinct", len(entries))
	return entries, nil
}

// Scan walks both regions and returns the full snapshot of everything
// declared anywhere in the image. A malformed region fails the whole scan;
// an absent region contributes an empty collection.
func (s *Scanner) Scan(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{index: make(map[section.Category]map[string]Entry)}

	for _, cat := range section.Categories {
		entries, err := s.scanCategory(ctx, cat)
		if err != nil {
			return nil, err
		}
		byName := make(map[string]Entry, len(entries))
		for _, e := range entries {
			byName[e.Name] = e
		}
		snap.index[cat] = byName

		switch cat {
		case section.CategoryModule:
			snap.Modules = entries
		case section.CategoryService:
			snap.Services = entries
		}
	}

	return snap, nil
}

// Modules scans the running image and returns its distinct module entries.
func Modules(ctx context.Context) ([]Entry, error) {
	return defaultScanner.scanCategory(ctx, section.CategoryModule)
}

// Services scans the running image and returns its distinct service entries.
func Services(ctx context.Context) ([]Entry, error) {
	return defaultScanner.scanCategory(ctx, section.CategoryService)
}

// Scan returns the full snapshot of the running image.
func Scan(ctx context.Context) (*Snapshot, error) {
	return defaultScanner.Scan(ctx)
}
