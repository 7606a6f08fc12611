// Package bundle collects the local files uploaded with a job configuration
package bundle

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coiled/coiled-examples/cli/errors"
	gitignore "github.com/monochromegane/go-gitignore"
)

type File struct {
	// Path is slash separated and relative to the bundle root
	Path string
	Size int64
	Mode os.FileMode
	abs  string
}

func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.abs)
}

type Bundle struct {
	Root  string
	Files []*File
}

func ignoreMatcher(root string) gitignore.IgnoreMatcher {
	ignore, err := gitignore.NewGitIgnore(filepath.Join(root, ".gitignore"), root)
	if err != nil {
		return gitignore.DummyIgnoreMatcher(false)
	}
	return ignore
}

// relative cleans p and checks it stays inside root
func relative(root string, p string) (string, error) {
	if filepath.IsAbs(p) {
		return "", errors.FileOutsideWorkdir(p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.FileOutsideWorkdir(p)
	}
	return clean, nil
}

// Resolve builds a bundle from paths relative to root. Every path must
// exist. Directories are expanded recursively, skipping .git and whatever
// root/.gitignore excludes. Explicitly listed files are always kept.
func Resolve(root string, paths []string) (*Bundle, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	b := &Bundle{Root: absRoot}
	seen := make(map[string]bool)
	add := func(abs string, fi os.FileInfo) error {
		rel, err := filepath.Rel(absRoot, abs)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if seen[rel] {
			return nil
		}
		seen[rel] = true
		b.Files = append(b.Files, &File{
			Path: rel,
			Size: fi.Size(),
			Mode: fi.Mode(),
			abs:  abs,
		})
		return nil
	}

	var ignore gitignore.IgnoreMatcher
	for _, p := range paths {
		clean, err := relative(absRoot, p)
		if err != nil {
			return nil, err
		}
		abs := filepath.Join(absRoot, clean)
		fi, err := os.Stat(abs)
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(p)
		} else if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			if err := add(abs, fi); err != nil {
				return nil, err
			}
			continue
		}
		if !fi.IsDir() {
			return nil, errors.FileNotFound(p)
		}

		if ignore == nil {
			ignore = ignoreMatcher(absRoot)
		}
		err = filepath.Walk(abs, func(file string, fi os.FileInfo, passedErr error) error {
			if passedErr != nil {
				return passedErr
			}
			if fi.IsDir() {
				if fi.Name() == ".git" || (file != abs && ignore.Match(file, true)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !fi.Mode().IsRegular() || ignore.Match(file, false) {
				return nil
			}
			return add(file, fi)
		})
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bundle) Paths() []string {
	paths := make([]string, 0, len(b.Files))
	for _, f := range b.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

func (b *Bundle) Contains(path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	for _, f := range b.Files {
		if f.Path == path {
			return true
		}
	}
	return false
}

func (b *Bundle) TotalSize() int64 {
	var total int64
	for _, f := range b.Files {
		total += f.Size
	}
	return total
}

// CommandFiles returns the elements of command that name regular files
// under root, as slash separated relative paths.
func CommandFiles(root string, command []string) []string {
	files := []string{}
	for _, arg := range command {
		if arg == "" || strings.HasPrefix(arg, "-") {
			continue
		}
		clean, err := relative(root, arg)
		if err != nil {
			continue
		}
		fi, err := os.Stat(filepath.Join(root, clean))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.ToSlash(clean))
	}
	return files
}

// Archive writes the bundle to w as a gzipped tarball
func (b *Bundle) Archive(w io.Writer) error {
	// tar > gzip > w
	zw := gzip.NewWriter(w)
	tw := tar.NewWriter(zw)

	for _, f := range b.Files {
		fi, err := os.Stat(f.abs)
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return err
		}
		header.Name = f.Path
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if err := copyFile(tw, f); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return zw.Close()
}

func copyFile(w io.Writer, f *File) error {
	data, err := f.Open()
	if err != nil {
		return err
	}
	defer data.Close()
	_, err = io.Copy(w, data)
	return err
}
