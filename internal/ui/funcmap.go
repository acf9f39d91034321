package ui

import "html/template"

// FuncMap exposes the primitives to page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"linkButton": func(label, href, variant, size string) template.HTML {
			return LinkButton{Label: label, Href: href, Variant: ButtonVariant(variant), Size: ButtonSize(size)}.Render()
		},
		"externalButton": func(label, href, variant, size string) template.HTML {
			return LinkButton{Label: label, Href: href, Variant: ButtonVariant(variant), Size: ButtonSize(size), External: true}.Render()
		},
		"submitButton": func(label, variant string) template.HTML {
			return Button{Label: label, Variant: ButtonVariant(variant), Submit: true}.Render()
		},
		"badge": func(label, variant string) template.HTML {
			return Badge{Label: label, Variant: BadgeVariant(variant), Size: BadgeSM}.Render()
		},
		"dotBadge": func(label, variant string) template.HTML {
			return Badge{Label: label, Variant: BadgeVariant(variant), Size: BadgeSM, Dot: true}.Render()
		},
		"sectionClass": func(size, background string) string {
			return Section{Size: SectionSize(size), Background: SectionBackground(background)}.Classes()
		},
		"containerClass": func(size string) string {
			return Container{Size: ContainerSize(size)}.Classes()
		},
		"safeURL": SafeURL,
	}
}
