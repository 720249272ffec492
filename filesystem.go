package htmlcheck

// FileSystem reads local files.
type FileSystem interface {
	// Exists reports whether path names an existing file or directory.
	Exists(path string) bool

	// ReadFile returns the contents of path.
	// A path that does not exist returns ENOTFOUND.
	ReadFile(path string) ([]byte, error)
}
