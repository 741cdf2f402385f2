package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sectreg/discovery"
	"github.com/vk/sectreg/registry"
	"github.com/vk/sectreg/section"
)

type widgetType struct{}

// newTestScanner builds a scanner over an isolated arena holding one
// resolved module and one unresolved service.
func newTestScanner(t *testing.T) *discovery.Scanner {
	t.Helper()
	arena := &section.Arena{}
	reg := registry.New(arena)
	reg.RegisterType(section.CategoryModule, "Alpha", "Widget", reflect.TypeOf(widgetType{}))
	reg.Register(section.CategoryService, "Core", "Ghost")
	return discovery.NewScanner(arena, reg)
}

func TestApp_Inspect_JSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := NewConfig(Config{Output: "json", LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, cfg, newTestScanner(t))

	// --- Act ---
	require.NoError(t, a.Inspect(context.Background()))

	// --- Assert ---
	var view struct {
		Modules []struct {
			Name     string `json:"name"`
			Resolved bool   `json:"resolved"`
			GoType   string `json:"go_type"`
		} `json:"modules"`
		Services []struct {
			Name     string `json:"name"`
			Resolved bool   `json:"resolved"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))

	require.Len(t, view.Modules, 1)
	require.Equal(t, "Alpha.Widget", view.Modules[0].Name)
	require.True(t, view.Modules[0].Resolved)
	require.NotEmpty(t, view.Modules[0].GoType)

	require.Len(t, view.Services, 1)
	require.Equal(t, "Core.Ghost", view.Services[0].Name)
	require.False(t, view.Services[0].Resolved)
}

func TestApp_Inspect_Text(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := NewConfig(Config{Output: "text", LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, &bytes.Buffer{}, cfg, newTestScanner(t))

	// --- Act ---
	require.NoError(t, a.Inspect(context.Background()))

	// --- Assert ---
	require.Contains(t, out.String(), "Alpha.Widget")
	require.Contains(t, out.String(), "UNRESOLVED")
}

func TestApp_Verify_PassAndFail(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	goodPath := filepath.Join(dir, "good.hcl")
	require.NoError(t, os.WriteFile(goodPath, []byte(`module "Alpha" "Widget" {}`), 0600))

	badDir := t.TempDir()
	badPath := filepath.Join(badDir, "bad.hcl")
	require.NoError(t, os.WriteFile(badPath, []byte(`module "Alpha" "Absent" {}`), 0600))

	newApp := func(manifestPath string) (*App, *bytes.Buffer) {
		cfg, err := NewConfig(Config{ManifestPath: manifestPath, LogLevel: "error"})
		require.NoError(t, err)
		out := &bytes.Buffer{}
		return NewApp(out, &bytes.Buffer{}, cfg, newTestScanner(t)), out
	}

	// --- Act / Assert ---
	a, out := newApp(goodPath)
	require.NoError(t, a.Verify(context.Background()))
	require.Contains(t, out.String(), "OK")

	a, _ = newApp(badPath)
	err := a.Verify(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Alpha.Absent")
}

func TestNewConfig_RejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Output: "xml"})
	require.Error(t, err)
}
