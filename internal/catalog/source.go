package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Fetcher loads the current catalog.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Ensure both sources implement Fetcher at compile time.
var (
	_ Fetcher = (*FileSource)(nil)
	_ Fetcher = (*Client)(nil)
)

// NewSource returns a Client for http(s) locations and a FileSource for
// anything else.
func NewSource(location string) (Fetcher, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog location is empty")
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return NewClient(trimmed)
	}
	return &FileSource{Path: trimmed}, nil
}

// FileSource reads a catalog file. The format follows the extension:
// .yaml/.yml, .json, anything else is TOML.
type FileSource struct {
	Path string
}

// Fetch reads and validates the file.
func (s *FileSource) Fetch(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	doc, err := Decode(filepath.Ext(s.Path), data)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc.Items); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.Path, err)
	}
	return doc.Items, nil
}

// Decode parses data in the format named by ext.
func Decode(ext string, data []byte) (Document, error) {
	var doc Document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("parse catalog yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse catalog json: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse catalog toml: %w", err)
		}
	}
	return doc, nil
}
