package ui

import "html/template"

// Container centers content and caps its width.
type Container struct {
	Size  ContainerSize
	Class string
	Body  template.HTML
}

// Classes returns the CSS class list for the container.
func (c Container) Classes() string {
	return classes("container", "container-"+string(c.Size.normalize()), c.Class)
}

// Render returns the container markup.
func (c Container) Render() template.HTML {
	return execute(containerTmpl, c)
}

// Section is a full-width page band wrapping a Container.
type Section struct {
	ID            string
	Size          SectionSize
	Background    SectionBackground
	ContainerSize ContainerSize
	Class         string
	Body          template.HTML
}

// Classes returns the CSS class list for the section element.
func (s Section) Classes() string {
	bg := ""
	if b := s.Background.normalize(); b != BackgroundDefault {
		bg = "bg-" + string(b)
	}
	return classes("section", "section-"+string(s.Size.normalize()), bg, s.Class)
}

// Render returns the section markup with its inner container.
func (s Section) Render() template.HTML {
	inner := Container{Size: s.ContainerSize, Body: s.Body}.Render()
	return execute(sectionTmpl, struct {
		Section
		Inner template.HTML
	}{s, inner})
}

var (
	containerTmpl = template.Must(template.New("container").Parse(
		`<div class="{{.Classes}}">{{.Body}}</div>`))
	sectionTmpl = template.Must(template.New("section").Parse(
		`<section{{if .ID}} id="{{.ID}}"{{end}} class="{{.Classes}}">{{.Inner}}</section>`))
)
