package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/sectreg/internal/ctxlog"
	"github.com/vk/sectreg/internal/fsutil"
)

// Load reads manifest declarations from path, which may be a single .hcl
// file or a directory searched recursively. Files are merged in discovery
// order; a directory with no .hcl files yields an empty manifest.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("manifest path: %w", err)
	}

	filePaths := []string{path}
	if info.IsDir() {
		filePaths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("walking manifest directory %s: %w", path, err)
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path.", "path", path)
		}
	}

	parser := hclparse.NewParser()
	merged := &Manifest{}

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var file fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		merged.Modules = append(merged.Modules, file.Modules...)
		merged.Services = append(merged.Services, file.Services...)
		logger.Debug("Loaded manifest file.", "file", filePath, "modules", len(file.Modules), "services", len(file.Services))
	}

	logger.Debug("Manifest loaded.", "modules", len(merged.Modules), "services", len(merged.Services))
	return merged, nil
}
