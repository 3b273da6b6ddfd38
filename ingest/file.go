package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// File is one input file of a batch. Its bytes are read lazily, inside the
// per-file task, so reading overlaps with parsing other files.
type File struct {
	// Name is the file name reported in failures and used for extension
	// matching and family fallbacks.
	Name string

	open func() (io.ReadCloser, error)
}

// FromBytes returns a File serving data.
func FromBytes(name string, data []byte) File {
	return File{
		Name: name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// FromPath returns a File reading the file at p. Its Name is the base name.
func FromPath(p string) File {
	return File{
		Name: filepath.Base(p),
		open: func() (io.ReadCloser, error) {
			// #nosec G304 -- font paths are chosen by the user
			return os.Open(p)
		},
	}
}

// FromFS returns a File reading name from fsys. Its Name is the base name.
func FromFS(fsys fs.FS, name string) File {
	return File{
		Name: path.Base(name),
		open: func() (io.ReadCloser, error) {
			return fsys.Open(name)
		},
	}
}

// Read returns the file's contents.
func (f File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.open == nil {
		return nil, fmt.Errorf("ingest: %s: no content", f.Name)
	}
	rc, err := f.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Dir lists every regular file under fsys, recursively, in lexical order.
// No extension filtering is done here; the pipeline does that.
func Dir(fsys fs.FS) ([]File, error) {
	var files []File
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, FromFS(fsys, name))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ingest: list directory: %w", err)
	}
	return files, nil
}

// Paths expands a mix of file and directory paths into Files. Directories
// are listed recursively; files keep the order given.
func Paths(paths ...string) ([]File, error) {
	var files []File
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		if !info.IsDir() {
			files = append(files, FromPath(p))
			continue
		}
		dirFiles, err := Dir(os.DirFS(p))
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}
	return files, nil
}
