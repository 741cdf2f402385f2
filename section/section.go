package section

import (
	"fmt"
	"sync"
)

// Category names one of the dedicated regions of the image.
type Category int

const (
	// CategoryModule is the region holding module registration records.
	CategoryModule Category = iota
	// CategoryService is the region holding service registration records.
	CategoryService
)

// Categories lists all region categories in scan order.
var Categories = []Category{CategoryModule, CategoryService}

// String implements fmt.Stringer for Category.
func (c Category) String() string {
	switch c {
	case CategoryModule:
		return "module"
	case CategoryService:
		return "service"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Arena holds the emulated section regions for one image. Records are
// appended during package initialization and are immutable thereafter; reads
// always see a copy, never the backing storage.
//
// The zero value is ready to use.
type Arena struct {
	mu      sync.Mutex
	regions map[Category][]byte
}

// defaultArena backs the regions of the running process image.
var defaultArena Arena

// Default returns the arena representing the currently running image.
func Default() *Arena {
	return &defaultArena
}

// Deposit appends one record slot carrying name to the region of the given
// category. It panics on a name that cannot be encoded, surfacing the error
// during process initialization rather than losing the record silently.
func (a *Arena) Deposit(cat Category, name string) {
	if name == "" {
		panic("section: cannot deposit an empty record name")
	}
	if len(name) > maxNameLen {
		panic(fmt.Sprintf("section: record name %q exceeds the %d-byte slot capacity", name, maxNameLen))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.regions == nil {
		a.regions = make(map[Category][]byte)
	}
	a.regions[cat] = encodeSlot(a.regions[cat], name)
}

// Region returns a copy of the raw bytes backing the given category. A
// category with no deposits yields a nil slice, the valid encoding of an
// empty region.
func (a *Arena) Region(cat Category) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	region := a.regions[cat]
	if len(region) == 0 {
		return nil
	}
	out := make([]byte, len(region))
	copy(out, region)
	return out
}

// Reset discards all deposited records. It exists for tests that need an
// empty image; production code never unloads records.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.regions = nil
}
