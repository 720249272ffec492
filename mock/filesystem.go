package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.FileSystem = (*FileSystem)(nil)

// FileSystem is a mock implementation of htmlcheck.FileSystem.
type FileSystem struct {
	ExistsFn   func(path string) bool
	ReadFileFn func(path string) ([]byte, error)
}

func (fs *FileSystem) Exists(path string) bool {
	return fs.ExistsFn(path)
}

func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	return fs.ReadFileFn(path)
}
