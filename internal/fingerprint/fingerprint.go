package fingerprint

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Fingerprinter returns a cache-busting value for the file at name, or "" if
// none is available.
type Fingerprinter interface {
	Fingerprint(name string) string
}

// Clock reports when a file was last modified.
type Clock interface {
	LastModified(name string) (time.Time, error)
}

// FSClock reads modification times from a filesystem.
type FSClock struct {
	fsys fs.FS
}

// NewFSClock creates a Clock backed by fsys.
func NewFSClock(fsys fs.FS) *FSClock {
	return &FSClock{fsys: fsys}
}

// LastModified returns the modification time of name.
func (c *FSClock) LastModified(name string) (time.Time, error) {
	clean, err := Normalize(name)
	if err != nil {
		return time.Time{}, err
	}
	info, err := fs.Stat(c.fsys, clean)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// ModTime fingerprints files by modification time.
type ModTime struct {
	clock Clock
}

// NewModTime creates a ModTime fingerprinter reading times from clock.
func NewModTime(clock Clock) *ModTime {
	return &ModTime{clock: clock}
}

// Fingerprint returns the unix modification time of name in seconds.
func (m *ModTime) Fingerprint(name string) string {
	if m.clock == nil {
		return ""
	}
	t, err := m.clock.LastModified(name)
	if err != nil || t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}

// ContentHash fingerprints files by hashing their content.
type ContentHash struct {
	fsys fs.FS
}

// NewContentHash creates a ContentHash fingerprinter reading files from fsys.
func NewContentHash(fsys fs.FS) *ContentHash {
	return &ContentHash{fsys: fsys}
}

// Fingerprint returns the xxhash64 of the content of name as 16 hex digits.
func (c *ContentHash) Fingerprint(name string) string {
	clean, err := Normalize(name)
	if err != nil {
		return ""
	}
	data, err := fs.ReadFile(c.fsys, clean)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Normalize converts a site-relative path such as "/css/site.css" to an io/fs
// name. Paths that escape the root are rejected with fs.ErrInvalid.
func Normalize(name string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || !fs.ValidPath(clean) {
		return "", &fs.PathError{Op: "fingerprint", Path: name, Err: fs.ErrInvalid}
	}
	if strings.Contains(name, "..") && escapes(name) {
		return "", &fs.PathError{Op: "fingerprint", Path: name, Err: fs.ErrInvalid}
	}
	return clean, nil
}

// escapes reports whether name climbs above its starting directory at any point.
func escapes(name string) bool {
	depth := 0
	for _, part := range strings.Split(strings.ReplaceAll(name, "\\", "/"), "/") {
		switch part {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}

// Compile-time interface checks.
var (
	_ Fingerprinter = (*ModTime)(nil)
	_ Fingerprinter = (*ContentHash)(nil)
	_ Clock         = (*FSClock)(nil)
)
