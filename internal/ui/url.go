package ui

import (
	"html/template"
	"net/url"
	"strings"
)

// SafeURL vets an href before it is marked safe for templates. Relative
// references and http(s), mailto and tel URLs pass; anything else
// becomes "#".
func SafeURL(href string) template.URL {
	href = strings.TrimSpace(href)
	if href == "" {
		return "#"
	}
	if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") {
		return template.URL(href)
	}
	u, err := url.Parse(href)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(href)
	}
	return "#"
}
