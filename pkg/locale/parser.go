package locale

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

// Parser decodes one locale file.
type Parser interface {
	// Parse decodes content into a validated locale. Fields the content omits are
	// inherited from the built-in English locale.
	Parse(ctx context.Context, content string) (*datetime.Locale, error)

	// SupportsFileExtension reports whether the parser handles the extension,
	// given with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser matching the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "yaml", "yml":
		return NewYAMLParser()
	case "json":
		return NewJSONParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}
