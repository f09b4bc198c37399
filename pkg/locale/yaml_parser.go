package locale

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

// YAMLParser implements Parser for YAML locale files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes YAML content. Unknown keys are rejected.
func (p *YAMLParser) Parse(ctx context.Context, content string) (*datetime.Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var f File
	dec := yaml.NewDecoder(strings.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return f.Locale()
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
