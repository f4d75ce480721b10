// Package store loads tournament items from a directory of record files.
//
// Every regular file with a recognized extension holds exactly one record
// with two required string fields:
//
//	{"name": "C++", "description": "..."}
//
// JSON (.json) and YAML (.yaml, .yml) records are supported. Other files and
// subdirectories are skipped.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/paintourney/internal/debug"
	"github.com/alexander-akhmetov/paintourney/internal/domain"
)

var (
	// ErrInvalidRecord is returned when a file is not a single record object.
	ErrInvalidRecord = errors.New("record must be a single object")
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrFieldType is returned when a required field is not a string.
	ErrFieldType = errors.New("field must be a string")
)

// LoadError reports why a data directory or record file could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type decoder func(data []byte) (domain.Item, error)

var decoders = map[string]decoder{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

// Recognized reports whether path has a record file extension.
func Recognized(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads every record file in dir. Any failure aborts the whole load.
// The returned order follows directory listing order and carries no meaning.
func Load(dir string) ([]domain.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}

	items := make([]domain.Item, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !Recognized(path) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if !info.Mode().IsRegular() {
			continue
		}

		item, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	debug.Logf("store: loaded %d items from %s", len(items), dir)
	return items, nil
}

// LoadFile decodes a single record file.
func LoadFile(path string) (domain.Item, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return domain.Item{}, &LoadError{Path: path, Err: fmt.Errorf("unsupported extension %q", filepath.Ext(path))}
	}
	data, err := os.ReadFile(path) //nolint:gosec // user's data directory
	if err != nil {
		return domain.Item{}, &LoadError{Path: path, Err: err}
	}
	item, err := dec(data)
	if err != nil {
		return domain.Item{}, &LoadError{Path: path, Err: err}
	}
	return item, nil
}

func decodeJSON(data []byte) (domain.Item, error) {
	if !gjson.ValidBytes(data) {
		return domain.Item{}, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return domain.Item{}, ErrInvalidRecord
	}

	var item domain.Item
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &item.Name},
		{"description", &item.Description},
	} {
		v := root.Get(f.key)
		if !v.Exists() {
			return domain.Item{}, fmt.Errorf("%w %q", ErrMissingField, f.key)
		}
		if v.Type != gjson.String {
			return domain.Item{}, fmt.Errorf("%q: %w", f.key, ErrFieldType)
		}
		*f.dst = v.String()
	}
	return item, nil
}

func decodeYAML(data []byte) (domain.Item, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		var typeErr *yaml.TypeError
		if errors.Is(err, io.EOF) || errors.As(err, &typeErr) {
			return domain.Item{}, ErrInvalidRecord
		}
		return domain.Item{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if raw == nil {
		return domain.Item{}, ErrInvalidRecord
	}
	// one file, one record
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return domain.Item{}, ErrInvalidRecord
	}

	var item domain.Item
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &item.Name},
		{"description", &item.Description},
	} {
		v, ok := raw[f.key]
		if !ok {
			return domain.Item{}, fmt.Errorf("%w %q", ErrMissingField, f.key)
		}
		s, ok := v.(string)
		if !ok {
			return domain.Item{}, fmt.Errorf("%q: %w", f.key, ErrFieldType)
		}
		*f.dst = s
	}
	return item, nil
}
