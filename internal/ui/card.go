package ui

import "html/template"

// Card is a bordered content panel with optional image, title and body.
type Card struct {
	Title       string
	Description string
	Image       string
	ImageAlt    string
	Overlay     bool
	Hover       bool
	Glass       bool
	Header      template.HTML // rendered above the title, e.g. badges
	Body        template.HTML
	Footer      template.HTML
	Class       string
}

// Classes returns the CSS class list for the card.
func (c Card) Classes() string {
	hover, glass := "", ""
	if c.Hover {
		hover = "card-hover"
	}
	if c.Glass {
		glass = "glass"
	}
	return classes("card", hover, glass, c.Class)
}

// Render returns the card markup.
func (c Card) Render() template.HTML {
	return execute(cardTmpl, struct {
		Card
		ImageURL template.URL
	}{c, SafeURL(c.Image)})
}

var cardTmpl = template.Must(template.New("card").Parse(`<div class="{{.Classes}}">
{{- if .Image}}
  <div class="card-image"><img src="{{.ImageURL}}" alt="{{.ImageAlt}}" loading="lazy">{{if .Overlay}}<div class="card-image-overlay"></div>{{end}}</div>
{{- end}}
{{- if or .Title .Description .Header}}
  <div class="card-header">
    {{- .Header}}
    {{- if .Title}}<h3 class="card-title">{{.Title}}</h3>{{end}}
    {{- if .Description}}<p class="card-description">{{.Description}}</p>{{end}}
  </div>
{{- end}}
{{- if .Body}}
  <div class="card-content">{{.Body}}</div>
{{- end}}
{{- if .Footer}}
  <div class="card-footer">{{.Footer}}</div>
{{- end}}
</div>`))
