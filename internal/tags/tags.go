// Package tags renders asset URLs into <link> and <script> markup.
package tags

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Formatter turns an asset URL and its attributes into a markup string.
// Implementations must accept a nil or empty attribute map.
type Formatter interface {
	StyleTag(url string, attrs map[string]string) string
	ScriptTag(url string, attrs map[string]string) string
}

// HTML formats tags with golang.org/x/net/html.
// The URL attribute comes first, followed by the remaining attributes sorted by
// name so output is stable across runs.
type HTML struct{}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// styleDefaults are added to every <link> unless the caller sets them.
var styleDefaults = map[string]string{
	"rel":  "stylesheet",
	"type": "text/css",
}

// StyleTag renders a stylesheet <link>.
func (h *HTML) StyleTag(url string, attrs map[string]string) string {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Link,
		Data:     atom.Link.String(),
		Attr:     buildAttrs("href", url, attrs, styleDefaults),
	}
	return render(n)
}

// ScriptTag renders an external <script>.
func (h *HTML) ScriptTag(url string, attrs map[string]string) string {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Script,
		Data:     atom.Script.String(),
		Attr:     buildAttrs("src", url, attrs, nil),
	}
	return render(n)
}

// buildAttrs puts urlKey first, then attrs merged over defaults in key order.
// An attrs entry for urlKey is ignored; the URL always wins.
func buildAttrs(urlKey, url string, attrs, defaults map[string]string) []html.Attribute {
	merged := make(map[string]string, len(attrs)+len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range attrs {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || k == urlKey {
			continue
		}
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys)+1)
	out = append(out, html.Attribute{Key: urlKey, Val: url})
	for _, k := range keys {
		out = append(out, html.Attribute{Key: k, Val: merged[k]})
	}
	return out
}

// render serializes a childless element. html.Render only fails for void
// elements with children, which these nodes never have.
func render(n *html.Node) string {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// Compile-time interface check.
var _ Formatter = (*HTML)(nil)
