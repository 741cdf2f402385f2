// Package envinfo declares the Envinfo.Collector module: a small inspector
// for the host process environment. It exists primarily to exercise
// cross-package, reference-free registration; nothing imports its symbols.
package envinfo

import (
	"os"
	"strings"

	"github.com/vk/sectreg/registry"
)

// Collector reads the process environment into a map.
type Collector struct{}

// Snapshot returns all environment variables as a key/value map.
func (c *Collector) Snapshot() map[string]string {
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

// Declared at package scope so the record is deposited during package
// initialization, before main.
var _ = registry.RegisterModuleType[Collector]("Envinfo", "Collector")
