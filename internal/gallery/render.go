package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/glade/internal/config"
	"github.com/alexisbeaulieu97/glade/internal/logger"
	"github.com/alexisbeaulieu97/glade/pkg/diff"
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// DefaultNow is the clock used when the config does not pin one, so renders
// are reproducible.
var DefaultNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// Renderer renders gallery pages to static HTML.
type Renderer struct {
	cfg *config.Config
	log *logger.Logger
	now time.Time
}

// NewRenderer prepares a renderer for cfg. cfg must already be validated.
func NewRenderer(cfg *config.Config, log *logger.Logger) *Renderer {
	if log == nil {
		log = logger.Nop()
	}
	now := cfg.Settings.Clock()
	if now.IsZero() {
		now = DefaultNow
	}
	return &Renderer{cfg: cfg, log: log, now: now}
}

// Now returns the pinned render clock.
func (r *Renderer) Now() time.Time { return r.now }

// runtime returns a fresh runtime on the pinned clock.
func (r *Renderer) runtime() *reactive.Runtime {
	return reactive.New(
		reactive.WithClock(reactive.NewFakeClockAt(r.now)),
		reactive.WithLogger(r.log.Zerolog()),
	)
}

// mount renders build into a throwaway document and hands each top-level
// element of the body to write before the document is torn down.
func (r *Renderer) mount(build func(scope *reactive.Scope) (dom.Component, error), w *bytes.Buffer) error {
	rt := r.runtime()
	scope := rt.NewScope()
	defer scope.Dispose()

	doc := dom.NewDocument(scope, dom.WithHost(dom.NewHeadlessHost()))
	var buildErr error
	rt.Do(func() {
		doc.Mount(func(s *reactive.Scope) dom.Component {
			c, err := build(s)
			if err != nil {
				buildErr = err
				return nil
			}
			return c
		})
	})
	if buildErr != nil {
		return buildErr
	}
	rt.RunUntilIdle()

	for _, child := range doc.Body().Children() {
		if err := dom.RenderIndentedHTML(w, child); err != nil {
			return err
		}
	}
	return nil
}

// RenderInstance renders one instance as an indented fragment.
func (r *Renderer) RenderInstance(inst config.Instance) (string, error) {
	var buf bytes.Buffer
	err := r.mount(func(s *reactive.Scope) (dom.Component, error) {
		return Build(s, inst)
	}, &buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPage renders page as a complete HTML document.
func (r *Renderer) RenderPage(page config.Page) ([]byte, error) {
	log := r.log.WithFields(map[string]any{"page": page.ID})

	var buf bytes.Buffer
	r.writeHead(&buf, page)
	err := r.mount(func(s *reactive.Scope) (dom.Component, error) {
		sections := make([]dom.Node, 0, len(page.Components))
		for _, inst := range page.Components {
			c, err := Build(s, inst)
			if err != nil {
				return nil, fmt.Errorf("component %s: %w", inst.ID, err)
			}
			sections = append(sections, dom.El("section",
				dom.ID(inst.ID),
				dom.Class("glade-gallery__section"),
				dom.El("h2", dom.Text(TitleOf(inst.Kind))),
				dom.Embed(c),
			))
		}
		return dom.ComponentFunc(func() *dom.Element {
			return dom.El("main",
				dom.Class("glade-gallery"),
				dom.El("h1", dom.Text(page.Title)),
				dom.Group(sections...),
			)
		}), nil
	}, &buf)
	if err != nil {
		return nil, err
	}
	buf.WriteString("</body>\n</html>\n")
	log.Debug(fmt.Sprintf("rendered %d components", len(page.Components)))
	return buf.Bytes(), nil
}

func (r *Renderer) writeHead(buf *bytes.Buffer, page config.Page) {
	lang := r.cfg.Settings.Lang
	if lang == "" {
		lang = "en"
	}
	buf.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(buf, "<html lang=%q>\n<head>\n", html.EscapeString(lang))
	buf.WriteString("<meta charset=\"utf-8\"/>\n")
	fmt.Fprintf(buf, "<title>%s · %s</title>\n", html.EscapeString(page.Title), html.EscapeString(r.cfg.Title))
	if r.cfg.Settings.Stylesheet != "" {
		fmt.Fprintf(buf, "<link rel=\"stylesheet\" href=%q/>\n", html.EscapeString(r.cfg.Settings.Stylesheet))
	}
	if css := ThemeCSS(r.cfg.Theme); css != "" {
		buf.WriteString("<style>\n" + css + "</style>\n")
	}
	buf.WriteString("</head>\n<body>\n")
}

// ThemeCSS renders theme variables as a :root rule with sorted names.
func ThemeCSS(theme map[string]string) string {
	if len(theme) == 0 {
		return ""
	}
	names := make([]string, 0, len(theme))
	for name := range theme {
		names = append(names, name)
	}
	slices.Sort(names)
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, theme[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// PageFile is the file name a page renders to.
func PageFile(page config.Page) string { return page.ID + ".html" }

// RenderAll writes every page into dir and returns the written paths.
func (r *Renderer) RenderAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(r.cfg.Pages))
	for _, page := range r.cfg.Pages {
		out, err := r.RenderPage(page)
		if err != nil {
			return paths, fmt.Errorf("render page %s: %w", page.ID, err)
		}
		path := filepath.Join(dir, PageFile(page))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		r.log.Info(fmt.Sprintf("wrote %s", path))
		paths = append(paths, path)
	}
	return paths, nil
}

// Mismatch is a page whose render differs from its golden file.
type Mismatch struct {
	Page    string
	Golden  string
	Missing bool
	Stats   diff.Stats
	Diff    string
	// Line is the first differing line and Summary its inline diff.
	Line    int
	Summary string
}

// Snapshot compares each page with goldenDir/<page>.html. With update set,
// differing or missing golden files are rewritten and no mismatches are
// reported.
func (r *Renderer) Snapshot(goldenDir string, update bool) ([]Mismatch, error) {
	if update {
		if err := os.MkdirAll(goldenDir, 0o755); err != nil {
			return nil, fmt.Errorf("create golden dir: %w", err)
		}
	}
	var mismatches []Mismatch
	for _, page := range r.cfg.Pages {
		actual, err := r.RenderPage(page)
		if err != nil {
			return nil, fmt.Errorf("render page %s: %w", page.ID, err)
		}
		golden := filepath.Join(goldenDir, PageFile(page))
		expected, err := os.ReadFile(golden)
		missing := errors.Is(err, fs.ErrNotExist)
		if err != nil && !missing {
			return nil, fmt.Errorf("read golden %s: %w", golden, err)
		}
		if !missing && bytes.Equal(expected, actual) {
			continue
		}
		if update {
			if err := os.WriteFile(golden, actual, 0o644); err != nil {
				return nil, fmt.Errorf("write golden %s: %w", golden, err)
			}
			r.log.Info(fmt.Sprintf("updated %s", golden))
			continue
		}
		m := Mismatch{Page: page.ID, Golden: golden, Missing: missing}
		if !missing {
			m.Stats = diff.LineStats(string(expected), string(actual))
			m.Diff = diff.GenerateUnifiedDiff(expected, actual, golden, page.ID+" (rendered)")
			m.Line = diff.FirstDifference(string(expected), string(actual))
			m.Summary = diff.Inline(lineAt(string(expected), m.Line), lineAt(string(actual), m.Line))
		}
		mismatches = append(mismatches, m)
	}
	return mismatches, nil
}

func lineAt(s string, n int) string {
	lines := strings.Split(s, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[n-1])
}
