package ui

import (
	"bytes"
	"html/template"
)

// Button is a clickable control. Buttons that navigate should use LinkButton.
type Button struct {
	Label     string
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
	Submit    bool
	Disabled  bool
	Action    string // emitted as data-action for the page script
	Class     string
}

// Classes returns the CSS class list for the button.
func (b Button) Classes() string {
	return buttonClasses(b.Variant, b.Size, b.FullWidth, b.Class)
}

// Render returns the button markup.
func (b Button) Render() template.HTML {
	typ := "button"
	if b.Submit {
		typ = "submit"
	}
	return execute(buttonTmpl, struct {
		Button
		Type string
	}{b, typ})
}

// LinkButton is an anchor styled as a button.
type LinkButton struct {
	Label     string
	Href      string
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
	External  bool
	Class     string
}

// Classes returns the CSS class list for the link.
func (l LinkButton) Classes() string {
	return buttonClasses(l.Variant, l.Size, l.FullWidth, l.Class)
}

// Render returns the anchor markup. External links open in a new tab
// without leaking the opener.
func (l LinkButton) Render() template.HTML {
	return execute(linkButtonTmpl, struct {
		LinkButton
		URL template.URL
	}{l, SafeURL(l.Href)})
}

func buttonClasses(v ButtonVariant, s ButtonSize, full bool, extra string) string {
	fullClass := ""
	if full {
		fullClass = "w-full"
	}
	return classes("btn", "btn-"+string(v.normalize()), "btn-"+string(s.normalize()), fullClass, extra)
}

var (
	buttonTmpl = template.Must(template.New("button").Parse(
		`<button type="{{.Type}}" class="{{.Classes}}"{{if .Action}} data-action="{{.Action}}"{{end}}{{if .Disabled}} disabled{{end}}>{{.Label}}</button>`))
	linkButtonTmpl = template.Must(template.New("link").Parse(
		`<a href="{{.URL}}" class="{{.Classes}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a>`))
)

func execute(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are fixed at compile time; a failure here is a programming error.
		panic("ui: " + t.Name() + ": " + err.Error())
	}
	return template.HTML(buf.String())
}
