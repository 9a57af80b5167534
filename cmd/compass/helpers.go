package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"compass/internal/assess"
	"compass/internal/catalog"
)

// loadCatalog resolves the active catalogue: the embedded shipped version
// when path is empty, otherwise the file at path.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}

// loadAttempt reads one attempt file. YAML and JSON are both accepted;
// the extension decides the decoder, defaulting to YAML.
func loadAttempt(path string) (assess.Input, error) {
	var input assess.Input
	data, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("read attempt: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &input)
	default:
		err = yaml.Unmarshal(data, &input)
	}
	if err != nil {
		return input, fmt.Errorf("parse attempt %s: %w", path, err)
	}
	if len(input.Responses) == 0 {
		return input, fmt.Errorf("attempt %s has no responses", path)
	}
	return input, nil
}

// loadRater reads a standalone rater response file and merges it into the
// attempt. A rater block already present in the attempt file is replaced.
func loadRater(path string, input *assess.Input) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rater file: %w", err)
	}
	var wrapper struct {
		Responses []assess.Response `json:"responses" yaml:"responses"`
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &wrapper)
	default:
		err = yaml.Unmarshal(data, &wrapper)
	}
	if err != nil {
		return fmt.Errorf("parse rater file %s: %w", path, err)
	}
	if len(wrapper.Responses) == 0 {
		return fmt.Errorf("rater file %s has no responses", path)
	}
	input.RaterResponses = wrapper.Responses
	return nil
}

// encodeResult serializes a result in the requested format. "text" renders
// the human report; "json" and "yaml" emit the full structure.
func encodeResult(result *assess.Result, format string) ([]byte, error) {
	switch format {
	case "text", "":
		return []byte(renderReport(result)), nil
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown format %q (available: text, json, yaml)", format)
}
