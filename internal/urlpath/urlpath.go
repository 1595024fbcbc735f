// Package urlpath classifies asset sources and applies path prefixes to them.
package urlpath

import (
	"strings"
)

// Kind classifies an asset source.
type Kind int

const (
	// Local is a path relative to the site root, e.g. "js/app.js" or "/js/app.js".
	Local Kind = iota
	// Remote is an absolute URL ("https://host/x.js") or a protocol-relative one ("//host/x.js").
	Remote
	// Inline is a data: URI. It is never prefixed or versioned.
	Inline
)

// Classify returns the kind of source s.
func Classify(s string) Kind {
	switch {
	case strings.HasPrefix(strings.ToLower(s), "data:"):
		return Inline
	case IsRemote(s):
		return Remote
	default:
		return Local
	}
}

// IsRemote returns true if s is protocol-relative or starts with "scheme://".
func IsRemote(s string) bool {
	if strings.HasPrefix(s, "//") {
		return true
	}
	return schemeLen(s) > 0
}

// StripScheme removes the leading "scheme://" or "//" from s.
// Local paths are returned unchanged.
func StripScheme(s string) string {
	if strings.HasPrefix(s, "//") {
		return s[2:]
	}
	if n := schemeLen(s); n > 0 {
		return s[n:]
	}
	return s
}

// schemeLen returns the length of a leading "scheme://" in s, or 0 if there is none.
// A scheme is a letter followed by letters, digits, '+', '-' or '.'.
func schemeLen(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			if strings.HasPrefix(s[i:], "://") {
				return i + 3
			}
			return 0
		default:
			return 0
		}
	}
	return 0
}

// Apply returns the effective URL for source under prefix.
//
//   - an empty prefix leaves source unchanged
//   - inline sources are never rewritten
//   - remote sources are left as-is unless prefix is remote too, in which case
//     the source loses its scheme marker and is appended to prefix
//   - local sources are appended to prefix
//
// Concatenation is literal: prefix loses its trailing slashes, source loses its
// leading ones, and a single "/" joins them.
func Apply(prefix, source string) string {
	if prefix == "" {
		return source
	}
	switch Classify(source) {
	case Inline:
		return source
	case Remote:
		if !IsRemote(prefix) {
			return source
		}
		return join(prefix, StripScheme(source))
	default:
		return join(prefix, source)
	}
}

// FilePath returns the site-relative path of a local source after prefixing,
// suitable for a filesystem lookup. Query strings and fragments are dropped.
// Returns false for remote and inline sources.
//
// A remote prefix does not change where the file lives locally, so only a
// local prefix is applied.
func FilePath(prefix, source string) (string, bool) {
	if Classify(source) != Local {
		return "", false
	}
	p := source
	if prefix != "" && !IsRemote(prefix) {
		p = join(prefix, source)
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return p, p != ""
}

// AppendQuery appends value to url as a bare query value, using "&" if url
// already has a query. Fragments stay at the end.
func AppendQuery(url, value string) string {
	if value == "" {
		return url
	}
	fragment := ""
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url, fragment = url[:i], url[i:]
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + value + fragment
}

func join(prefix, rest string) string {
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(rest, "/")
}
