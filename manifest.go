package maple

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// ManifestSchemaVersion is the extension manifest schema version.
const ManifestSchemaVersion = 1

// ManifestField is one key of the extension manifest.
type ManifestField struct {
	Key   string
	Value any
}

// Manifest is the ordered key/value extension manifest (extension.toml).
type Manifest []ManifestField

// NewManifest returns the extension manifest for meta listing themeFiles.
func NewManifest(meta Metadata, themeFiles ...string) Manifest {
	if themeFiles == nil {
		themeFiles = []string{}
	}
	return Manifest{
		{Key: "id", Value: meta.ID},
		{Key: "name", Value: meta.Name},
		{Key: "version", Value: meta.Version},
		{Key: "schema_version", Value: ManifestSchemaVersion},
		{Key: "description", Value: meta.Description},
		{Key: "repository", Value: meta.Repository},
		{Key: "authors", Value: []string{meta.Author}},
		{Key: "themes", Value: themeFiles},
	}
}

// Encode renders the manifest as "key = value" lines joined by newlines.
// Strings are double quoted, slices and arrays are JSON encoded inline and
// all other values are written verbatim.
func (m Manifest) Encode() ([]byte, error) {
	lines := make([]string, 0, len(m))
	for _, f := range m {
		value, err := encodeManifestValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", f.Key, err)
		}
		lines = append(lines, f.Key+" = "+value)
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func encodeManifestValue(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("nil value")
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Slice, reflect.Array:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	default:
		return fmt.Sprint(v), nil
	}
}
