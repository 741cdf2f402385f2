package envinfo

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sectreg/discovery"
)

func TestCollector_Snapshot(t *testing.T) {
	// --- Arrange ---
	// t.Setenv is incompatible with t.Parallel.
	t.Setenv("SECTREG_TEST_MARKER", "probe")
	c := &Collector{}

	// --- Act ---
	env := c.Snapshot()

	// --- Assert ---
	require.Equal(t, "probe", env["SECTREG_TEST_MARKER"])
}

func TestDeclarationIsDiscoverable(t *testing.T) {
	t.Parallel()

	// --- Act ---
	// The package-scope registration hook ran during init, so the record
	// must already be present in the running image.
	modules, err := discovery.Modules(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	var found bool
	for _, entry := range modules {
		if entry.Name == "Envinfo.Collector" {
			found = true
			require.True(t, entry.Resolved)
			require.Equal(t, reflect.TypeOf(Collector{}), entry.Type)
		}
	}
	require.True(t, found, "Envinfo.Collector must be discoverable without any explicit reference")
}
