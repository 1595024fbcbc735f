// Package assetpipe manages named style and script assets, orders them by
// their declared dependencies and renders them as <link> and <script> tags.
//
// # Quick Start
//
// Register assets on a container and render them:
//
//	c := assetpipe.NewContainer("default", nil)
//	c.Script("jquery", "//code.jquery.com/jquery.js", nil, nil)
//	c.Script("app", "js/app.js", []string{"jquery"}, nil)
//	c.Style("site", "css/site.css", nil, nil)
//
//	html, err := c.Show() // scripts, then styles
//
// Assets are rendered after the assets they depend on, whatever order they
// were registered in. Dependencies naming an unregistered asset are skipped
// and dependency cycles are broken silently unless strict mode is enabled.
//
// # Overrides and Removals
//
// An override replaces an asset's definition for the next render only:
//
//	c.Override(assetpipe.Script, "app", "js/app.debug.js", nil, nil)
//	c.Scripts() // uses js/app.debug.js
//	c.Scripts() // back to js/app.js
//
// A removal drops an asset on the next render; it stays gone until the name
// is registered again. Removing an unknown name is not an error.
//
// # Prefixes and Versioning
//
// A container prefix is prepended to local sources. When the prefix is itself
// remote (a CDN host), absolute sources are moved under it too:
//
//	c.Prefix("//cdn.example.com")
//	// js/app.js                     -> //cdn.example.com/js/app.js
//	// https://code.jquery.com/j.js  -> //cdn.example.com/code.jquery.com/j.js
//
// With versioning enabled, local URLs get a cache-busting query value taken
// from the file's modification time, or from a hash of its content:
//
//	d := assetpipe.NewDispatcher(
//	    assetpipe.WithVersioning(true),
//	    assetpipe.WithRoot("public"),
//	    assetpipe.WithFingerprintMode(assetpipe.FingerprintContent),
//	)
//	c := assetpipe.NewContainer("default", d)
//
// # Manifests
//
// Containers can be declared in a YAML or TOML manifest and loaded into a
// Factory:
//
//	f, err := assetpipe.LoadFactory("assets.yaml")
//	html, err := f.Container("default").Show()
package assetpipe
