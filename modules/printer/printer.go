// Package printer declares the Printer.Printer module, a formatter for
// key/value maps with deterministic output order.
package printer

import (
	"fmt"
	"io"
	"sort"

	"github.com/vk/sectreg/registry"
)

// Printer writes key/value maps to a writer.
type Printer struct{}

// Fprint writes the map to w, one "key = value" line per entry, with keys
// sorted for consistent output.
func (p *Printer) Fprint(w io.Writer, values map[string]string) {
	if values == nil {
		fmt.Fprintln(w, "(null)")
		return
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s = %q\n", k, values[k])
	}
}

var _ = registry.RegisterModuleType[Printer]("Printer", "Printer")
