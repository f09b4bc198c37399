package locale

import "errors"

var (
	// Parsing
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML locale")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON locale")
	ErrTOMLParsingCancelled = errors.New("toml parsing cancelled")
	ErrFailedToParseTOML    = errors.New("failed to parse TOML locale")
	ErrUnknownKeys          = errors.New("locale file contains unknown keys")
	ErrUnsupportedFormat    = errors.New("unsupported locale file format")

	// Schema
	ErrMissingName   = errors.New("locale name is missing")
	ErrInvalidLocale = errors.New("invalid locale data")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading locale file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read locale file")
	ErrFailedToParseFile    = errors.New("failed to parse locale file")
	ErrEmptyFile            = errors.New("locale file is empty")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access locale directory")
	ErrLoadingDirectoryCancelled = errors.New("loading locale directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read locale directory")
	ErrNoLocalesFound            = errors.New("no locale files found")

	// Registry
	ErrNilAdapter     = errors.New("locale adapter is nil")
	ErrLocaleNotFound = errors.New("locale not found")
	ErrInvalidTag     = errors.New("invalid language tag")
)
