package locale

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

// JSONParser implements Parser for JSON locale files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content. Unknown keys are rejected.
func (p *JSONParser) Parse(ctx context.Context, content string) (*datetime.Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var f File
	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	return f.Locale()
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
