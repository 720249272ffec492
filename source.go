package htmlcheck

import "net/url"

// SourceKind discriminates where the HTML for a check comes from.
type SourceKind int

const (
	SourceFile SourceKind = iota + 1
	SourceURL
)

// String returns a short name for the kind.
func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceURL:
		return "url"
	default:
		return "unknown"
	}
}

// Source identifies the HTML document to check: a local file path or a URL.
type Source struct {
	Kind     SourceKind
	Location string
}

// FileSource returns a Source reading HTML from a local file.
func FileSource(path string) Source {
	return Source{Kind: SourceFile, Location: path}
}

// URLSource returns a Source fetching HTML from a URL.
func URLSource(rawURL string) Source {
	return Source{Kind: SourceURL, Location: rawURL}
}

// String returns the location, which is how sources are shown to users.
func (s Source) String() string {
	return s.Location
}

// Validate returns an error if the source cannot be resolved.
func (s Source) Validate() error {
	switch s.Kind {
	case SourceFile:
		if s.Location == "" {
			return Errorf(EINVALID, "HTML file path required")
		}
	case SourceURL:
		if s.Location == "" {
			return Errorf(EINVALID, "URL required")
		}
		u, err := url.Parse(s.Location)
		if err != nil {
			return Errorf(EINVALID, "invalid URL %q: %v", s.Location, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Errorf(EINVALID, "URL must be absolute http or https: %q", s.Location)
		}
	default:
		return Errorf(EINVALID, "unknown source kind %d", s.Kind)
	}
	return nil
}
