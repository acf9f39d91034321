package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/google/uuid"

	"github.com/nothingbetterhealth/nbh-site/internal/ui"
)

// RenderOptions vary per request.
type RenderOptions struct {
	Dismissed map[string]bool // alert keys the visitor has closed
	Static    bool            // page is being exported rather than served
}

// layoutData is what the "layout" template receives.
type layoutData struct {
	Head     head
	SiteName string
	NavHTML  template.HTML
	Mobile   template.HTML
	Alerts   []template.HTML
	Body     template.HTML
	Footer   footer
	Tel      string
	Booking  string
	Mode     string
	RenderID string
	View     string
}

// Render writes the full HTML document for p.
func (s *Site) Render(w io.Writer, p Page, opts RenderOptions) error {
	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, p.View, p.Data); err != nil {
		return fmt.Errorf("rendering %s: %w", p.View, err)
	}

	mode := "server"
	if opts.Static {
		mode = "static"
	}

	data := layoutData{
		Head:     s.Head(p),
		SiteName: s.Catalog.Site.Name,
		NavHTML:  template.HTML(s.nav.ToHTML(p.Path)),
		Mobile:   template.HTML(s.nav.MobileHTML(p.Path)),
		Alerts:   s.alerts(p.Alerts, opts.Dismissed),
		Body:     template.HTML(body.String()),
		Footer:   s.Footer(),
		Tel:      s.Catalog.TelHref(),
		Booking:  s.Catalog.External.BookAppointment,
		Mode:     mode,
		RenderID: uuid.NewString(),
		View:     p.View,
	}
	if err := s.tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	return nil
}

// RenderGrid writes only the locations listing, for the live filter.
func (s *Site) RenderGrid(w io.Writer, g Grid) error {
	if err := s.tmpl.ExecuteTemplate(w, "location-grid", g); err != nil {
		return fmt.Errorf("rendering location grid: %w", err)
	}
	return nil
}

// NewAlert builds the banner for a catalog alert key.
func (s *Site) NewAlert(key string) (*ui.Alert, error) {
	msg, err := s.Catalog.Alert(key)
	if err != nil {
		return nil, err
	}
	a := ui.NewAlert(key, ui.AlertType(msg.Type), msg.Title, msg.Message, true, s.delay)
	if a.Type == ui.AlertEmergency {
		a.Action = ui.LinkButton{
			Label:   "Call " + s.Catalog.Site.EmergencyPhone + " Now",
			Href:    "tel:" + s.Catalog.Site.EmergencyPhone,
			Variant: ui.ButtonSecondary,
			Size:    ui.ButtonSM,
		}.Render()
	}
	return a, nil
}

func (s *Site) alerts(keys []string, dismissed map[string]bool) []template.HTML {
	var out []template.HTML
	for _, key := range keys {
		if dismissed[key] {
			continue
		}
		a, err := s.NewAlert(key)
		if err != nil {
			continue
		}
		out = append(out, a.Render())
	}
	return out
}
