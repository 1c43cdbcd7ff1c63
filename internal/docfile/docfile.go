// Package docfile reads and writes the editable document form of a
// preset. JSON is the default; files ending in .yaml or .yml use YAML.
package docfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pc1600ctl/internal/preset"
)

// FileVersion guards against documents written by an incompatible
// version of the layout.
const FileVersion = "1.0.0"

type fileDoc struct {
	FileVersion   string         `json:"file_version" yaml:"file_version"`
	Name          string         `json:"name" yaml:"name"`
	GlobalChannel int            `json:"global_channel" yaml:"global_channel"`
	Params        map[string]int `json:"params" yaml:"params"`
}

// Marshal renders doc as an indented JSON document.
func Marshal(doc *preset.Document) ([]byte, error) {
	data, err := json.MarshalIndent(wrap(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("docfile: marshal: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal parses a JSON document produced by Marshal.
func Unmarshal(data []byte) (*preset.Document, error) {
	var fd fileDoc
	if err := json.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("docfile: parse: %w", err)
	}
	return unwrap(fd)
}

// Read loads a preset document from path.
func Read(path string) (*preset.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isYAML(path) {
		return Unmarshal(data)
	}
	var fd fileDoc
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("docfile: parse %s: %w", path, err)
	}
	return unwrap(fd)
}

// Write stores doc at path in the format the extension selects.
func Write(path string, doc *preset.Document) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(wrap(doc))
		if err != nil {
			return fmt.Errorf("docfile: marshal %s: %w", path, err)
		}
	} else {
		data, err = Marshal(doc)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func wrap(doc *preset.Document) *fileDoc {
	return &fileDoc{
		FileVersion:   FileVersion,
		Name:          doc.Name,
		GlobalChannel: doc.GlobalChannel,
		Params:        doc.Params,
	}
}

func unwrap(fd fileDoc) (*preset.Document, error) {
	if fd.FileVersion != FileVersion {
		return nil, fmt.Errorf("docfile: unsupported file version %q (want %q)", fd.FileVersion, FileVersion)
	}
	if fd.Params == nil {
		fd.Params = map[string]int{}
	}
	return &preset.Document{
		Name:          fd.Name,
		GlobalChannel: fd.GlobalChannel,
		Params:        fd.Params,
	}, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
