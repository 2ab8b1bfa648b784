// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/roster/pkg/types"
)

// Encode serializes clients in the given format. JSON is indented with two
// spaces and keeps non-ASCII text and HTML characters literal.
func Encode(format types.OutputFormat, clients []types.Client) ([]byte, error) {
	if clients == nil {
		clients = []types.Client{}
	}

	switch format {
	case types.FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(clients); err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return buf.Bytes(), nil
	case types.FormatYAML:
		data, err := yaml.Marshal(clients)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// WriteClients encodes clients and writes them to path, creating the parent
// directory if needed.
func WriteClients(path string, format types.OutputFormat, clients []types.Client) error {
	data, err := Encode(format, clients)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
