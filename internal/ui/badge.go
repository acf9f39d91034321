package ui

import "html/template"

// Badge is a small status or label pill.
type Badge struct {
	Label   string
	Variant BadgeVariant
	Size    BadgeSize
	Dot     bool
	Class   string
}

// Classes returns the CSS class list for the badge.
func (b Badge) Classes() string {
	return classes("badge", "badge-"+string(b.Variant.normalize()), "badge-"+string(b.Size.normalize()), b.Class)
}

// DotClasses returns the class list for the leading status dot.
func (b Badge) DotClasses() string {
	return "badge-dot badge-dot-" + string(b.Variant.normalize())
}

// Render returns the badge markup.
func (b Badge) Render() template.HTML {
	return execute(badgeTmpl, b)
}

var badgeTmpl = template.Must(template.New("badge").Parse(
	`<span class="{{.Classes}}">{{if .Dot}}<span class="{{.DotClasses}}"></span>{{end}}{{.Label}}</span>`))
