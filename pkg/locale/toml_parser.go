package locale

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

// TOMLParser implements Parser for TOML locale files.
type TOMLParser struct{}

// NewTOMLParser creates a new TOMLParser instance
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse decodes TOML content. Keys that map to no schema field are rejected.
func (p *TOMLParser) Parse(ctx context.Context, content string) (*datetime.Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrTOMLParsingCancelled, err)
	}

	var f File
	md, err := toml.Decode(content, &f)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Join(ErrFailedToParseTOML, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", ")))
	}

	return f.Locale()
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "toml")
}
