// Package site composes the pages of the public website from the catalog
// and renders them through one html/template set. The same pages are
// served live by internal/server and written to disk by Generator.
package site

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
	"github.com/nothingbetterhealth/nbh-site/internal/content"
	"github.com/nothingbetterhealth/nbh-site/internal/ui"
)

// Options tune how pages are rendered.
type Options struct {
	BaseURL      string        // absolute origin used for canonical links
	DismissDelay time.Duration // alert dismiss delay mirrored by the page script
}

// Site holds everything needed to compose and render pages. It is safe for
// concurrent use.
type Site struct {
	Catalog *catalog.Catalog
	Content *content.Store

	baseURL string
	delay   time.Duration
	nav     *NavNode
	tmpl    *template.Template
	now     func() time.Time
}

// New parses the page templates and prepares the navigation tree. A nil
// content store behaves like an empty one.
func New(cat *catalog.Catalog, store *content.Store, opts Options) (*Site, error) {
	if cat == nil {
		return nil, fmt.Errorf("site: catalog is required")
	}
	if store == nil {
		store = content.Empty()
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	return &Site{
		Catalog: cat,
		Content: store,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		delay:   opts.DismissDelay,
		nav:     BuildNav(cat),
		tmpl:    tmpl,
		now:     time.Now,
	}, nil
}

// Nav returns the navigation tree.
func (s *Site) Nav() *NavNode { return s.nav }

func parseTemplates() (*template.Template, error) {
	funcs := ui.FuncMap()
	funcs["markdown"] = Markdown
	funcs["upper"] = strings.ToUpper
	funcs["join"] = strings.Join
	funcs["stateCard"] = renderStateCard
	funcs["providerCard"] = renderProviderCard
	funcs["serviceCard"] = renderServiceCard
	funcs["topicCard"] = renderTopicCard

	t := template.New("site").Funcs(funcs)
	for name, src := range pageTemplates {
		if _, err := t.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
	}
	return t, nil
}
