package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/idlab-discover/uom-cli/internal/catalog"
	yaml "go.yaml.in/yaml/v3"
)

// ResolveFormat picks "yaml" or "json" for path.
// The format parameter can be "yaml", "json", or "auto" (default).
// If "auto", the format is determined from the file extension, defaulting to YAML.
func ResolveFormat(path string, format string) (string, error) {
	actual := strings.ToLower(strings.TrimSpace(format))
	switch actual {
	case "", "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return "json", nil
		default:
			return "yaml", nil
		}
	case "yml":
		return "yaml", nil
	case "json", "yaml":
		return actual, nil
	default:
		return "", fmt.Errorf("unsupported batch format: %q", format)
	}
}

// ReadRequests reads a request file (see File).
func ReadRequests(path string, format string) ([]catalog.Request, error) {
	actual, err := ResolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch actual {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
		if err == io.EOF {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logf("", "read %d requests from %s (%s)", len(f.Conversions), path, actual)
	return f.Conversions, nil
}

// Encode writes rep to w as "yaml" or "json".
func Encode(w io.Writer, rep Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported batch format: %q", format)
	}
}

// WriteReport writes rep to outputPath; the format is resolved as in ResolveFormat.
// Nothing is written when encoding fails.
func WriteReport(rep Report, outputPath string, format string) error {
	actual, err := ResolveFormat(outputPath, format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rep, actual); err != nil {
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logf("", "wrote %d entries to %s (%s)", len(rep.Entries), outputPath, actual)
	return nil
}
