package assetpipe

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func newTestContainer() *Container {
	return NewContainer("test", nil)
}

func mustRender(t *testing.T, render func() (string, error)) string {
	t.Helper()
	out, err := render()
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	return out
}

// ---------------------------------------------------------------------------
// Rendering order and output
// ---------------------------------------------------------------------------

func TestContainer_Scripts_DependencyOrder(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("app", "app.js", []string{"jquery"}, nil)
	c.Script("jquery", "//cdn/jquery.js", nil, nil)

	got := mustRender(t, c.Scripts)
	want := `<script src="//cdn/jquery.js"></script><script src="app.js"></script>`
	if got != want {
		t.Errorf("Scripts() = %s\nwant %s", got, want)
	}
}

func TestContainer_Styles_Empty(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("app", "app.js", nil, nil)

	if got := mustRender(t, c.Styles); got != "" {
		t.Errorf("Styles() = %q, want empty", got)
	}
}

func TestContainer_Styles_DefaultMedia(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Style("site", "css/site.css", nil, nil)
	c.Style("print", "css/print.css", []string{"site"}, map[string]string{"media": "print"})

	got := mustRender(t, c.Styles)
	want := `<link href="css/site.css" media="all" rel="stylesheet" type="text/css"/>` +
		`<link href="css/print.css" media="print" rel="stylesheet" type="text/css"/>`
	if got != want {
		t.Errorf("Styles() = %s\nwant %s", got, want)
	}
}

func TestContainer_Show_ScriptsThenStyles(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Style("site", "site.css", nil, nil)
	c.Script("app", "app.js", nil, nil)

	got := mustRender(t, c.Show)
	want := `<script src="app.js"></script>` +
		`<link href="site.css" media="all" rel="stylesheet" type="text/css"/>`
	if got != want {
		t.Errorf("Show() = %s\nwant %s", got, want)
	}
}

func TestContainer_Render_Idempotent(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("ui", "ui.js", []string{"core"}, nil)
	c.Script("core", "core.js", nil, nil)
	c.Script("legacy", "legacy.js", nil, nil)
	c.Remove(Script, "legacy")

	first := mustRender(t, c.Scripts)
	for i := 0; i < 3; i++ {
		if again := mustRender(t, c.Scripts); again != first {
			t.Fatalf("render %d = %s, want %s", i+2, again, first)
		}
	}
}

func TestContainer_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		source string
		want   string
	}{
		{
			name:   "remote prefix on local source",
			prefix: "//cdn.example.com",
			source: "foo.js",
			want:   `<script src="//cdn.example.com/foo.js"></script>`,
		},
		{
			name:   "local prefix on local source",
			prefix: "/assets/",
			source: "/js/foo.js",
			want:   `<script src="/assets/js/foo.js"></script>`,
		},
		{
			name:   "local prefix keeps remote source",
			prefix: "/assets",
			source: "https://code.jquery.com/jquery.js",
			want:   `<script src="https://code.jquery.com/jquery.js"></script>`,
		},
		{
			name:   "remote prefix rewrites remote source",
			prefix: "https://cdn.example.com",
			source: "https://code.jquery.com/jquery.js",
			want:   `<script src="https://cdn.example.com/code.jquery.com/jquery.js"></script>`,
		},
		{
			name:   "no prefix",
			prefix: "",
			source: "foo.js",
			want:   `<script src="foo.js"></script>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestContainer()
			c.Prefix(tt.prefix)
			c.Script("foo", tt.source, nil, nil)

			if got := mustRender(t, c.Scripts); got != tt.want {
				t.Errorf("Scripts() = %s\nwant %s", got, tt.want)
			}
			if c.PrefixPath() != tt.prefix {
				t.Errorf("PrefixPath() = %q, want %q", c.PrefixPath(), tt.prefix)
			}
		})
	}
}

func TestContainer_SkipsEmptySource(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("broken", "", nil, nil)
	c.Script("app", "app.js", []string{"broken"}, nil)

	if got := mustRender(t, c.Scripts); got != `<script src="app.js"></script>` {
		t.Errorf("Scripts() = %s", got)
	}
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func TestContainer_Add_InfersType(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Add("site", "css/site.CSS?v=2", nil, nil)
	c.Add("app", "js/app.js", nil, nil)
	c.Add("font", "//fonts.example.com/inter", nil, nil)

	if !c.Has(Style, "site") {
		t.Error("site.css not registered as style")
	}
	if !c.Has(Script, "app") || !c.Has(Script, "font") {
		t.Error("non-css sources not registered as scripts")
	}
}

func TestContainer_Register_ReplacesInPlace(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("a", "a.js", nil, nil)
	c.Script("b", "b.js", nil, nil)
	c.Script("a", "a2.js", nil, map[string]string{"defer": ""})

	got := mustRender(t, c.Scripts)
	want := `<script src="a2.js" defer=""></script><script src="b.js"></script>`
	if got != want {
		t.Errorf("Scripts() = %s\nwant %s", got, want)
	}
}

// ---------------------------------------------------------------------------
// Overrides
// ---------------------------------------------------------------------------

func TestContainer_Override_AppliesOnce(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("foo", "foo.js", nil, nil)
	c.Override(Script, "foo", "foo-debug.js", nil, nil)

	if got := mustRender(t, c.Scripts); got != `<script src="foo-debug.js"></script>` {
		t.Errorf("first render = %s, want override", got)
	}
	if got := mustRender(t, c.Scripts); got != `<script src="foo.js"></script>` {
		t.Errorf("second render = %s, want original", got)
	}
}

func TestContainer_Override_MarkerName(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Add("foo", "foo.js", nil, nil)
	c.Add("!foo", "foo-debug.js", nil, nil)

	if c.Has(Script, "!foo") {
		t.Error("override marker kept in the asset name")
	}
	if got := mustRender(t, c.Scripts); got != `<script src="foo-debug.js"></script>` {
		t.Errorf("first render = %s, want override", got)
	}
	if got := mustRender(t, c.Scripts); got != `<script src="foo.js"></script>` {
		t.Errorf("second render = %s, want original", got)
	}
}

func TestContainer_Override_WithoutBase(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Override(Style, "theme", "dark.css", nil, nil)

	want := `<link href="dark.css" media="all" rel="stylesheet" type="text/css"/>`
	for i := 0; i < 2; i++ {
		if got := mustRender(t, c.Styles); got != want {
			t.Errorf("render %d = %s, want %s", i+1, got, want)
		}
	}
}

func TestContainer_Override_ScopedToType(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("app", "app.js", nil, nil)
	c.Override(Script, "app", "app-debug.js", nil, nil)

	// Rendering styles must not consume the script override.
	_ = mustRender(t, c.Styles)
	if got := mustRender(t, c.Scripts); got != `<script src="app-debug.js"></script>` {
		t.Errorf("Scripts() = %s, want override", got)
	}
}

func TestContainer_Override_ChangesDependencies(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("a", "a.js", nil, nil)
	c.Script("b", "b.js", nil, nil)
	c.Override(Script, "a", "a.js", []string{"b"}, nil)

	want := `<script src="b.js"></script><script src="a.js"></script>`
	if got := mustRender(t, c.Scripts); got != want {
		t.Errorf("Scripts() = %s\nwant %s", got, want)
	}
}

// ---------------------------------------------------------------------------
// Removals
// ---------------------------------------------------------------------------

func TestContainer_Remove(t *testing.T) {
	t.Parallel()

	t.Run("excludes removed asset", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Script("jquery", "jquery.js", nil, nil)
		c.Script("app", "app.js", []string{"jquery"}, nil)
		c.Remove(Script, "jquery")

		if got := mustRender(t, c.Scripts); got != `<script src="app.js"></script>` {
			t.Errorf("Scripts() = %s", got)
		}
		if c.Has(Script, "jquery") {
			t.Error("removed asset still registered after render")
		}
	})

	t.Run("unknown name changes nothing", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Script("app", "app.js", nil, nil)
		before := mustRender(t, c.Scripts)

		c.Remove(Script, "never-added")
		if got := mustRender(t, c.Scripts); got != before {
			t.Errorf("Scripts() = %s, want %s", got, before)
		}
	})

	t.Run("removal is per type", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Style("app", "app.css", nil, nil)
		c.Script("app", "app.js", nil, nil)
		c.Remove(Style, "app")

		out := mustRender(t, c.Show)
		if strings.Contains(out, "app.css") {
			t.Errorf("style app still rendered: %s", out)
		}
		if !strings.Contains(out, "app.js") {
			t.Errorf("script app missing: %s", out)
		}
	})

	t.Run("unknown type name ignored", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Script("app", "app.js", nil, nil)
		c.RemoveByName("image", "app")
		c.RemoveByName("scripts", "missing")

		if got := mustRender(t, c.Scripts); got != `<script src="app.js"></script>` {
			t.Errorf("Scripts() = %s", got)
		}
	})

	t.Run("re-register after removal", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Script("app", "app.js", nil, nil)
		c.Remove(Script, "app")
		_ = mustRender(t, c.Scripts)

		c.Script("app", "app.js", nil, nil)
		if got := mustRender(t, c.Scripts); got != `<script src="app.js"></script>` {
			t.Errorf("Scripts() = %s", got)
		}
	})

	t.Run("override of removed asset is dropped", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Script("app", "app.js", nil, nil)
		c.Override(Script, "app", "debug.js", nil, nil)
		c.Remove(Script, "app")

		if got := mustRender(t, c.Scripts); got != "" {
			t.Errorf("Scripts() = %s, want empty", got)
		}
	})
}

// ---------------------------------------------------------------------------
// Strict mode
// ---------------------------------------------------------------------------

func TestContainer_Strict(t *testing.T) {
	t.Parallel()

	t.Run("unknown dependency fails and keeps pending state", func(t *testing.T) {
		t.Parallel()

		c := NewContainer("strict", NewDispatcher(WithStrict(true)))
		c.Script("app", "app.js", []string{"jquery"}, nil)
		c.Script("old", "old.js", nil, nil)
		c.Override(Script, "app", "debug.js", []string{"jquery"}, nil)
		c.Remove(Script, "old")

		_, err := c.Scripts()
		if !errors.Is(err, ErrUnknownDependency) {
			t.Fatalf("Scripts() error = %v, want ErrUnknownDependency", err)
		}
		if !c.Has(Script, "old") {
			t.Error("failed render consumed a removal")
		}

		c.Script("jquery", "jquery.js", nil, nil)
		got := mustRender(t, c.Scripts)
		want := `<script src="jquery.js"></script><script src="debug.js"></script>`
		if got != want {
			t.Errorf("Scripts() = %s\nwant %s", got, want)
		}
	})

	t.Run("cycle fails", func(t *testing.T) {
		t.Parallel()

		c := NewContainer("strict", NewDispatcher(WithStrict(true)))
		c.Style("a", "a.css", []string{"b"}, nil)
		c.Style("b", "b.css", []string{"a"}, nil)

		_, err := c.Styles()
		if !errors.Is(err, ErrDependencyCycle) {
			t.Fatalf("Styles() error = %v, want ErrDependencyCycle", err)
		}
		if _, err := c.Show(); !errors.Is(err, ErrDependencyCycle) {
			t.Errorf("Show() error = %v, want ErrDependencyCycle", err)
		}
	})

	t.Run("show failing on styles keeps script state", func(t *testing.T) {
		t.Parallel()

		c := NewContainer("strict", NewDispatcher(WithStrict(true)))
		c.Script("app", "app.js", nil, nil)
		c.Script("old", "old.js", nil, nil)
		c.Override(Script, "app", "debug.js", nil, nil)
		c.Remove(Script, "old")
		c.Style("site", "site.css", []string{"missing"}, nil)

		if _, err := c.Show(); !errors.Is(err, ErrUnknownDependency) {
			t.Fatalf("Show() error = %v, want ErrUnknownDependency", err)
		}
		if !c.Has(Script, "old") {
			t.Error("failed Show consumed a script removal")
		}

		got := mustRender(t, c.Scripts)
		want := `<script src="debug.js"></script>`
		if got != want {
			t.Errorf("Scripts() = %s\nwant %s", got, want)
		}
	})

	t.Run("lenient mode renders cycles once", func(t *testing.T) {
		t.Parallel()

		c := newTestContainer()
		c.Style("a", "a.css", []string{"b"}, nil)
		c.Style("b", "b.css", []string{"a"}, nil)

		out := mustRender(t, c.Styles)
		if strings.Count(out, "a.css") != 1 || strings.Count(out, "b.css") != 1 {
			t.Errorf("Styles() = %s, want each asset once", out)
		}
	})
}

// ---------------------------------------------------------------------------
// Diagnostics
// ---------------------------------------------------------------------------

func TestContainer_Check(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("app", "app.js", []string{"jquery", "ui"}, nil)
	c.Script("ui", "ui.js", []string{"app"}, nil)

	report, err := c.Check(Script)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.OK() {
		t.Fatal("Check() reported OK")
	}
	wantMissing := []MissingDependency{{Asset: "app", Dependency: "jquery"}}
	if !reflect.DeepEqual(report.Missing, wantMissing) {
		t.Errorf("Missing = %+v, want %+v", report.Missing, wantMissing)
	}
	if !reflect.DeepEqual(report.Cycles, [][]string{{"app", "ui"}}) {
		t.Errorf("Cycles = %v", report.Cycles)
	}

	// Check does not consume anything.
	if !c.Has(Script, "app") || len(c.Assets(Script)) != 2 {
		t.Error("Check() changed the registry")
	}
}

func TestContainer_WriteGraph(t *testing.T) {
	t.Parallel()

	c := newTestContainer()
	c.Script("app", "app.js", []string{"jquery"}, nil)
	c.Script("jquery", "jquery.js", nil, nil)

	var buf bytes.Buffer
	if err := c.WriteGraph(&buf, Script); err != nil {
		t.Fatalf("WriteGraph() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"jquery"`) || !strings.Contains(buf.String(), `"app"`) {
		t.Errorf("WriteGraph() output missing vertices:\n%s", buf.String())
	}
}
