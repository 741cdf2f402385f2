package manifest

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sectreg/discovery"
	"github.com/vk/sectreg/registry"
	"github.com/vk/sectreg/section"
)

type fooType struct{}

// writeManifest writes one manifest file into a fresh temp dir and returns
// its path.
func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// snapshotWith builds a snapshot over an isolated arena from the given
// resolved module names.
func snapshotWith(t *testing.T, moduleNames ...string) *discovery.Snapshot {
	t.Helper()
	arena := &section.Arena{}
	reg := registry.New(arena)
	for _, name := range moduleNames {
		arena.Deposit(section.CategoryModule, name)
		reg.Bind(name, reflect.TypeOf(fooType{}))
	}
	snap, err := discovery.NewScanner(arena, reg).Scan(context.Background())
	require.NoError(t, err)
	return snap
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeManifest(t, "expected.hcl", `
module "Alpha" "Foo" {
  description = "first module"
  annotations = { owner = "core-team" }
}

module "Alpha" "Bar" {}

service "Core" "Auth" {
  optional = true
}
`)

	// --- Act ---
	m, err := Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, m.Modules, 2)
	require.Len(t, m.Services, 1)

	require.Equal(t, "Alpha.Foo", m.Modules[0].Name())
	require.Equal(t, "first module", m.Modules[0].Description)
	require.NotNil(t, m.Modules[0].Annotations)

	require.Equal(t, "Core.Auth", m.Services[0].Name())
	require.True(t, m.Services[0].Optional)
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`module "Alpha" "Foo" {}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`service "Core" "Auth" {}`), 0600))

	// --- Act ---
	m, err := Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, m.Modules, 1)
	require.Len(t, m.Services, 1)
}

func TestLoad_InvalidHCL(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "broken.hcl", `module "Alpha" {`)
	m, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Nil(t, m)
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	m, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	require.Nil(t, m)
}

func TestVerify_Pass(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	snap := snapshotWith(t, "Alpha.Foo")
	m := &Manifest{Modules: []*Declaration{{Namespace: "Alpha", TypeName: "Foo"}}}

	// --- Act / Assert ---
	require.NoError(t, Verify(context.Background(), snap, m, false))
}

func TestVerify_DeclaredButAbsent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	snap := snapshotWith(t, "Alpha.Foo")
	m := &Manifest{Modules: []*Declaration{
		{Namespace: "Alpha", TypeName: "Foo"},
		{Namespace: "Alpha", TypeName: "Gone"},
	}}

	// --- Act ---
	err := Verify(context.Background(), snap, m, false)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "Alpha.Gone")
	require.Contains(t, err.Error(), "not present in the image")
}

func TestVerify_DeclaredButUnresolved(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Deposit the record without binding a type.
	arena := &section.Arena{}
	reg := registry.New(arena)
	arena.Deposit(section.CategoryModule, "Alpha.Foo")
	snap, err := discovery.NewScanner(arena, reg).Scan(context.Background())
	require.NoError(t, err)

	m := &Manifest{Modules: []*Declaration{{Namespace: "Alpha", TypeName: "Foo"}}}

	// --- Act ---
	verifyErr := Verify(context.Background(), snap, m, false)

	// --- Assert ---
	require.Error(t, verifyErr)
	require.Contains(t, verifyErr.Error(), "did not resolve to a type")
}

func TestVerify_OptionalAbsentPasses(t *testing.T) {
	t.Parallel()

	snap := snapshotWith(t, "Alpha.Foo")
	m := &Manifest{Modules: []*Declaration{
		{Namespace: "Alpha", TypeName: "Foo"},
		{Namespace: "Alpha", TypeName: "Maybe", Optional: true},
	}}
	require.NoError(t, Verify(context.Background(), snap, m, false))
}

func TestVerify_StrictRejectsUndeclaredEntries(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	snap := snapshotWith(t, "Alpha.Foo", "Alpha.Surprise")
	m := &Manifest{Modules: []*Declaration{{Namespace: "Alpha", TypeName: "Foo"}}}

	// --- Act / Assert ---
	require.NoError(t, Verify(context.Background(), snap, m, false), "non-strict mode only warns about undeclared entries")

	err := Verify(context.Background(), snap, m, true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Alpha.Surprise")
}
