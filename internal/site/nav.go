package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

// NavNode is one link in the main navigation. The Locations entry carries a
// child per state for the dropdown.
type NavNode struct {
	Label    string
	Href     string
	Note     string // secondary line, e.g. "Coming Soon"
	Dot      bool   // green status dot for active states
	Children []*NavNode
}

// BuildNav constructs the navigation tree from the catalog's entries. The
// entry pointing at /locations gets one child per state in catalog order.
func BuildNav(cat *catalog.Catalog) *NavNode {
	root := &NavNode{Label: cat.Site.Name, Href: "/"}

	for _, entry := range cat.Navigation {
		node := &NavNode{Label: entry.Name, Href: entry.Href}
		if entry.Href == "/locations" {
			for _, s := range cat.States() {
				child := &NavNode{Label: s.Name, Href: "/locations/" + s.ID, Dot: s.IsActive()}
				if !s.IsActive() {
					child.Note = "Coming Soon"
				}
				node.Children = append(node.Children, child)
			}
		}
		root.Children = append(root.Children, node)
	}
	return root
}

// IsActive reports whether a nav link should be highlighted for the current
// path. "/" only matches itself; every other href matches by prefix.
func IsActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, href)
}

// ToHTML renders the navigation as a <ul> with the active entry marked.
func (n *NavNode) ToHTML(activePath string) string {
	var b strings.Builder
	b.WriteString(`<ul class="nav-links">` + "\n")
	for _, child := range n.Children {
		renderNavItem(&b, child, activePath)
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// MobileHTML renders the slide-out menu. Only active states appear under
// Locations, matching the dropdown's purpose on small screens.
func (n *NavNode) MobileHTML(activePath string) string {
	var b strings.Builder
	b.WriteString(`<ul class="mobile-links">` + "\n")
	for _, child := range n.Children {
		if len(child.Children) > 0 {
			fmt.Fprintf(&b, `<li class="mobile-group"><span class="mobile-group-label">%s</span><ul>`+"\n", html.EscapeString(child.Label))
			for _, c := range child.Children {
				if !c.Dot {
					continue
				}
				fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`+"\n", html.EscapeString(c.Href), html.EscapeString(c.Label))
			}
			b.WriteString("</ul></li>\n")
			continue
		}
		fmt.Fprintf(&b, `<li><a href="%s"%s>%s</a></li>`+"\n",
			html.EscapeString(child.Href), activeAttr(child.Href, activePath), html.EscapeString(child.Label))
	}
	b.WriteString("</ul>\n")
	return b.String()
}

func renderNavItem(b *strings.Builder, node *NavNode, activePath string) {
	if len(node.Children) == 0 {
		fmt.Fprintf(b, `<li class="nav-item"><a href="%s"%s>%s</a></li>`+"\n",
			html.EscapeString(node.Href), activeAttr(node.Href, activePath), html.EscapeString(node.Label))
		return
	}

	fmt.Fprintf(b, `<li class="nav-item has-dropdown"><a href="%s"%s aria-haspopup="true">%s <span class="chevron" aria-hidden="true">&#9662;</span></a>`+"\n",
		html.EscapeString(node.Href), activeAttr(node.Href, activePath), html.EscapeString(node.Label))
	b.WriteString(`<ul class="dropdown">` + "\n")
	for _, c := range node.Children {
		note := ""
		if c.Note != "" {
			note = fmt.Sprintf(`<span class="dropdown-note">%s</span>`, html.EscapeString(c.Note))
		}
		dot := ""
		if c.Dot {
			dot = `<span class="status-dot" aria-hidden="true"></span>`
		}
		fmt.Fprintf(b, `<li><a href="%s"%s><span class="dropdown-label">%s%s</span>%s</a></li>`+"\n",
			html.EscapeString(c.Href), activeAttr(c.Href, activePath), html.EscapeString(c.Label), note, dot)
	}
	b.WriteString("</ul></li>\n")
}

func activeAttr(href, path string) string {
	if IsActive(href, path) {
		return ` class="active"`
	}
	return ""
}
