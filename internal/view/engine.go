package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile = "templates/layout.html"
	pagesDir   = "templates/pages"
)

// Engine renders pages from html/template files. Every page under
// templates/pages is parsed together with the shared layout and is addressed
// by its path without the extension, e.g. "auth/login".
type Engine struct {
	files fs.FS
	funcs template.FuncMap

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// New returns an engine over the embedded templates.
func New() *Engine {
	return NewFromFS(templateFS)
}

// NewFromFS returns an engine over files, which must contain the same
// templates/ layout as the embedded set.
func NewFromFS(files fs.FS) *Engine {
	return &Engine{files: files, funcs: Funcs()}
}

// Load parses all templates. fiber calls it once at startup.
func (e *Engine) Load() error {
	layout, err := template.New("layout.html").Funcs(e.funcs).ParseFS(e.files, layoutFile)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(e.files, pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}
		page, err := layout.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(e.files, p); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, pagesDir+"/"), ".html")
		pages[name] = page
		return nil
	})
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()
	return nil
}

// Render executes the named page inside the layout. The layout argument is
// accepted for fiber.Views compatibility and ignored.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	e.mu.RLock()
	loaded := e.pages != nil
	e.mu.RUnlock()
	if !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	page, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return page.ExecuteTemplate(w, "layout", binding)
}
