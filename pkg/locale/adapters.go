package locale

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

// Adapter loads locales from some source.
type Adapter interface {
	Load(ctx context.Context) ([]*datetime.Locale, error)
}

// MapAdapter serves locales from in-memory file data keyed by name.
// A File with an empty Name takes its map key as the name.
type MapAdapter struct {
	Data map[string]File
}

// Load implements the Adapter interface
func (a *MapAdapter) Load(ctx context.Context) ([]*datetime.Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	names := make([]string, 0, len(a.Data))
	for name := range a.Data {
		names = append(names, name)
	}
	slices.Sort(names)

	locales := make([]*datetime.Locale, 0, len(names))
	for _, name := range names {
		f := a.Data[name]
		if f.Name == "" {
			f.Name = name
		}
		loc, err := f.Locale()
		if err != nil {
			return nil, err
		}
		locales = append(locales, loc)
	}
	return locales, nil
}

// FileAdapter loads a single locale file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// A nil parser is chosen from the file extension at load time.
// Returns nil if path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface
func (a *FileAdapter) Load(ctx context.Context) ([]*datetime.Locale, error) {
	parser := a.parser
	if parser == nil {
		if parser = NewParserForFile(a.path); parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, a.path)
		}
	}

	loc, err := loadFile(ctx, parser, a.path, func() ([]byte, error) { return os.ReadFile(a.path) })
	if err != nil {
		return nil, err
	}
	return []*datetime.Locale{loc}, nil
}

// DirectoryAdapter loads every supported locale file in a directory.
// Subdirectories and files with unsupported extensions are skipped; a file that
// fails to parse fails the whole load.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance.
// A nil parser picks one per file from its extension; otherwise only files the
// parser supports are read. Returns nil if path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) ([]*datetime.Locale, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFailedToAccessDirectory, a.path)
	}

	return loadDir(ctx, a.parser, os.DirFS(a.path), ".")
}

// EmbedAdapter loads every supported locale file in a directory of an fs.FS,
// typically an embed.FS.
type EmbedAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbedAdapter creates a new EmbedAdapter instance.
// Returns nil if fsys is nil or dir is empty.
func NewEmbedAdapter(parser Parser, fsys fs.FS, dir string) *EmbedAdapter {
	if fsys == nil || dir == "" {
		return nil
	}
	return &EmbedAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the Adapter interface
func (a *EmbedAdapter) Load(ctx context.Context) ([]*datetime.Locale, error) {
	return loadDir(ctx, a.parser, a.fsys, a.dir)
}

//go:embed locales
var builtinFS embed.FS

// Builtin returns an adapter over the locales shipped with the package.
func Builtin() *EmbedAdapter {
	return NewEmbedAdapter(nil, builtinFS, "locales")
}

func loadDir(ctx context.Context, parser Parser, fsys fs.FS, dir string) ([]*datetime.Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	var locales []*datetime.Locale
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		p := parser
		if p == nil {
			p = NewParserForFile(name)
		} else if !p.SupportsFileExtension(path.Ext(name)) {
			p = nil
		}
		if p == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		filePath := path.Join(dir, name)
		loc, err := loadFile(ctx, p, filePath, func() ([]byte, error) { return fs.ReadFile(fsys, filePath) })
		if err != nil {
			return nil, err
		}
		locales = append(locales, loc)
	}

	if len(locales) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLocalesFound, dir)
	}
	return locales, nil
}

// loadFile reads through read, honouring ctx, and parses the content.
func loadFile(ctx context.Context, parser Parser, name string, read func() ([]byte, error)) (*datetime.Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}

	loc, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return loc, nil
}
