// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes the records matching opts to w in the given format. Unless
// opts.Limit is set, every record is exported.
func (s *Store) Export(ctx context.Context, w io.Writer, format string, opts ListOptions) error {
	if opts.Limit == 0 {
		opts.Limit = -1
	}
	records, err := s.List(ctx, opts)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	switch format {
	case FormatYAML, "":
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// ExportFile writes the export to path, creating parent directories.
func (s *Store) ExportFile(ctx context.Context, path, format string, opts ListOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := s.Export(ctx, f, format, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
