// Package registry holds named style and script assets before they are rendered.
//
// Assets are grouped by Type. Names are unique within a type only, so a style
// and a script may share a name. Each type keeps three collections:
//
//	assets     the live set, in first-registration order
//	overrides  replacement definitions applied to the next render only
//	removals   names recorded for deletion on the next render
//
// Overrides and removals are taken (read and cleared) by the render pass, which
// is what makes an override apply exactly once and a removal permanent until the
// name is registered again.
package registry
