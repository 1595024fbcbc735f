package registry

import (
	"fmt"
	"strings"
)

// Type identifies the kind of asset and selects the tag it renders to.
type Type int

// Asset types.
const (
	Style Type = iota
	Script
)

// numTypes is the number of recognised types; Type values index arrays of this size.
const numTypes = 2

// Types lists every recognised type in render order for Show (scripts first).
var Types = []Type{Script, Style}

// String returns the singular lowercase name of the type.
func (t Type) String() string {
	switch t {
	case Style:
		return "style"
	case Script:
		return "script"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is a recognised type.
func (t Type) Valid() bool {
	return t == Style || t == Script
}

// ParseType converts a type name to a Type.
// Accepts singular, plural and extension forms, case-insensitive:
// "style", "styles", "css", "script", "scripts", "js".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "style", "styles", "css":
		return Style, nil
	case "script", "scripts", "js":
		return Script, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Asset is a named style or script resource.
type Asset struct {
	Name         string
	Source       string            // local path, absolute URL or protocol-relative URL
	Dependencies []string          // names of assets of the same type, in declared order
	Attributes   map[string]string // rendered as markup attributes
}

// Clone returns a deep copy so stored state never aliases caller slices or maps.
func (a Asset) Clone() Asset {
	c := Asset{Name: a.Name, Source: a.Source}
	if a.Dependencies != nil {
		c.Dependencies = append([]string(nil), a.Dependencies...)
	}
	c.Attributes = make(map[string]string, len(a.Attributes))
	for k, v := range a.Attributes {
		c.Attributes[k] = v
	}
	return c
}
