// Package fs provides local file access for htmlcheck.
package fs

import (
	"errors"
	"os"

	"github.com/fwojciec/htmlcheck"
)

// Ensure FileSystem implements htmlcheck.FileSystem at compile time.
var _ htmlcheck.FileSystem = (*FileSystem)(nil)

// FileSystem reads files from the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path names an existing file or directory.
func (fs *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the contents of path. A missing path returns ENOTFOUND
// and a directory returns EINVALID.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "stat %s: %v", path, err)
	}
	if info.IsDir() {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "reading %s: %v", path, err)
	}
	return data, nil
}
