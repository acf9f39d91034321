package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nothingbetterhealth/nbh-site/internal/assets"
	"github.com/nothingbetterhealth/nbh-site/internal/progress"
)

// Generator exports every route of a Site as static HTML.
type Generator struct {
	Site      *Site
	OutputDir string
	PublicDir string // copied under the output root, e.g. public/images -> images
	Include   []string
	Exclude   []string
	Reporter  progress.Reporter
}

// Result summarizes an export.
type Result struct {
	Pages  int
	Assets int
}

// Generate writes all pages, the 404 page, the stylesheet and script, the
// locations index and the public assets.
func (g *Generator) Generate() (Result, error) {
	var res Result
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, err
	}

	staticDir := filepath.Join(g.OutputDir, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(staticDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(staticDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return res, err
	}

	if err := WriteLocationIndex(BuildLocationIndex(g.Site.Catalog), filepath.Join(g.OutputDir, "locations.json")); err != nil {
		return res, fmt.Errorf("writing location index: %w", err)
	}

	routes := g.Site.Routes()
	reporter.Start(len(routes) + 1)
	for i, route := range routes {
		reporter.Update(i+1, route)
		page := g.Site.Resolve(route, nil)
		if err := g.writePage(OutputPath(route), page); err != nil {
			reporter.Finish()
			return res, fmt.Errorf("rendering %s: %w", route, err)
		}
		res.Pages++
	}

	reporter.Update(len(routes)+1, "404")
	if err := g.writePage("404.html", g.Site.NotFound("/404")); err != nil {
		reporter.Finish()
		return res, fmt.Errorf("rendering 404 page: %w", err)
	}
	res.Pages++
	reporter.Finish()

	files, err := assets.Walk(g.PublicDir, g.Include, g.Exclude)
	if err != nil {
		return res, fmt.Errorf("walking public dir: %w", err)
	}
	if err := assets.Copy(files, g.OutputDir); err != nil {
		return res, fmt.Errorf("copying public assets: %w", err)
	}
	res.Assets = len(files)

	return res, nil
}

func (g *Generator) writePage(relPath string, page Page) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(relPath))
	if rel, err := filepath.Rel(g.OutputDir, outPath); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("page path %q escapes the output directory", relPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := g.Site.Render(f, page, RenderOptions{Static: true}); err != nil {
		return err
	}
	return f.Close()
}

// OutputPath maps a route to its file in the export: "/" is index.html and
// every other route gets a directory with an index.html.
func OutputPath(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}
