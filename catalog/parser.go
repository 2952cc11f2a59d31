package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns serialized catalog content into a locale → key → template map.
type Parser interface {
	Parse(content []byte) (map[string]map[string]string, error)
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser matching the file's extension, or nil when
// the format is not supported.
func ParserForFile(filename string) Parser {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// YAMLParser parses YAML catalog files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(content []byte) (map[string]map[string]string, error) {
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	return validateStructure(raw)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	return ext == "yaml" || ext == "yml"
}

// JSONParser parses JSON catalog files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(content []byte) (map[string]map[string]string, error) {
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	return validateStructure(raw)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.TrimPrefix(strings.ToLower(ext), ".") == "json"
}

func validateStructure(raw map[string]map[string]string) (map[string]map[string]string, error) {
	for locale, templates := range raw {
		if strings.TrimSpace(locale) == "" {
			return nil, ErrEmptyLocale
		}
		if templates == nil {
			return nil, fmt.Errorf("%w: locale %q has no templates", ErrInvalidStructure, locale)
		}
	}
	return raw, nil
}
