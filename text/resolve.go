package text

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/text/cases"
)

// Resolver picks a face for a requested size by walking a fallback chain:
// the named font (as given, then searched in the font directories), the
// absolute path of the same font, and finally the built-in bitmap face.
//
// Resolve never fails; each tier that cannot be used is logged at debug
// level and skipped.
type Resolver struct {
	// Name is a font file name such as "arial.ttf".
	Name string

	// Path is the well-known absolute location of the same font.
	Path string

	// Dirs are searched recursively for Name. Defaults to the system font
	// directories.
	Dirs []string

	// Logger receives tier diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// NewResolver returns a Resolver searching the system font directories.
func NewResolver(name, path string) *Resolver {
	return &Resolver{
		Name: name,
		Path: path,
		Dirs: xdg.FontDirs,
	}
}

// newFace sizes a source; replaced in tests.
var newFace = func(src *FontSource, size float64) (*Face, error) {
	return src.Face(size)
}

// Resolve returns a face at size points. A tier counts only when both its
// font loads and a face of that size can be made from it; otherwise the next
// tier is tried. The built-in face, whose size is fixed, ends the chain.
func (r *Resolver) Resolve(size float64) *Face {
	if r.Name != "" {
		face, err := r.tierFace(r.loadNamed, size)
		if err == nil {
			return face
		}
		r.log(slog.LevelDebug, "named font unavailable", "name", r.Name, "err", err)
	}

	if r.Path != "" {
		face, err := r.tierFace(func() (*FontSource, error) { return NewFontSourceFromFile(r.Path) }, size)
		if err == nil {
			return face
		}
		r.log(slog.LevelDebug, "font path unavailable", "path", r.Path, "err", err)
	}

	r.log(slog.LevelDebug, "falling back to built-in font", "size", size)
	return Builtin()
}

func (r *Resolver) tierFace(load func() (*FontSource, error), size float64) (*Face, error) {
	src, err := load()
	if err != nil {
		return nil, err
	}
	face, err := newFace(src, size)
	if err != nil {
		return nil, err
	}
	r.log(slog.LevelDebug, "font resolved", "name", face.Name(), "path", src.Path(), "size", size)
	return face, nil
}

// Lookup loads the font source of the first tier that succeeds, without
// sizing it.
func (r *Resolver) Lookup() (*FontSource, error) {
	var errs []error

	if r.Name != "" {
		src, err := r.loadNamed()
		if err == nil {
			return src, nil
		}
		errs = append(errs, err)
	}

	if r.Path != "" {
		src, err := NewFontSourceFromFile(r.Path)
		if err == nil {
			return src, nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, ErrFontNotFound
	}
	return nil, fmt.Errorf("%w: %w", ErrFontNotFound, errors.Join(errs...))
}

func (r *Resolver) loadNamed() (*FontSource, error) {
	src, err := NewFontSourceFromFile(r.Name)
	if err == nil {
		return src, nil
	}

	path, ferr := FindFont(r.Dirs, filepath.Base(r.Name))
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	return NewFontSourceFromFile(path)
}

func (r *Resolver) log(level slog.Level, msg string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Log(context.Background(), level, msg, args...)
}

// FindFont searches dirs recursively for a file called name, ignoring case,
// and returns the first match. Unreadable directories are skipped.
func FindFont(dirs []string, name string) (string, error) {
	fold := cases.Fold()
	want := fold.String(name)

	for _, dir := range dirs {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if fold.String(d.Name()) == want {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFontNotFound, name)
}
