package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// ErrNotFound is returned by lookups that require a record to exist.
var ErrNotFound = errors.New("not found")

// Catalog is the read-only set of configuration tables the pages are built
// from. It is safe for concurrent use once constructed.
type Catalog struct {
	Site           SiteInfo
	Navigation     []NavEntry
	Services       []Service
	Insurances     []Insurance
	FAQCategories  []string
	FAQTopics      []Topic
	ResourceTopics []Topic
	Social         SocialLinks
	External       ExternalLinks

	states        []State
	providers     []Provider
	stateIndex    map[string]int
	providerIndex map[string]int
	alerts        map[string]AlertMessage
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog from a YAML file. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{
		Site:           doc.Site,
		Navigation:     doc.Navigation,
		Services:       doc.Services,
		Insurances:     doc.Insurances,
		FAQCategories:  doc.FAQCategories,
		FAQTopics:      doc.FAQTopics,
		ResourceTopics: doc.ResourceTopics,
		Social:         doc.Social,
		External:       doc.External,
		states:         doc.States,
		providers:      doc.Providers,
		stateIndex:     make(map[string]int, len(doc.States)),
		providerIndex:  make(map[string]int, len(doc.Providers)),
		alerts:         doc.Alerts,
	}
	for i, s := range doc.States {
		if s.ID == "" {
			return nil, fmt.Errorf("state #%d has no id", i)
		}
		if _, dup := c.stateIndex[s.ID]; dup {
			return nil, fmt.Errorf("duplicate state id %q", s.ID)
		}
		c.stateIndex[s.ID] = i
	}
	for i, p := range doc.Providers {
		if p.ID == "" {
			return nil, fmt.Errorf("provider #%d has no id", i)
		}
		if _, dup := c.providerIndex[p.ID]; dup {
			return nil, fmt.Errorf("duplicate provider id %q", p.ID)
		}
		c.providerIndex[p.ID] = i
	}
	if c.alerts == nil {
		c.alerts = map[string]AlertMessage{}
	}
	return c, nil
}

// States returns all states in declaration order. The slice is a copy.
func (c *Catalog) States() []State {
	out := make([]State, len(c.states))
	copy(out, c.states)
	return out
}

// Providers returns all providers in declaration order. The slice is a copy.
func (c *Catalog) Providers() []Provider {
	out := make([]Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

// State looks up a state by id.
func (c *Catalog) State(id string) (State, bool) {
	i, ok := c.stateIndex[id]
	if !ok {
		return State{}, false
	}
	return c.states[i], true
}

// Provider looks up a provider by id.
func (c *Catalog) Provider(id string) (Provider, bool) {
	i, ok := c.providerIndex[id]
	if !ok {
		return Provider{}, false
	}
	return c.providers[i], true
}

// StatesByStatus returns the states with the given status, in order.
func (c *Catalog) StatesByStatus(status StateStatus) []State {
	var out []State
	for _, s := range c.states {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

// ProvidersFor resolves a state's provider ids. Unknown ids are skipped.
func (c *Catalog) ProvidersFor(s State) []Provider {
	out := make([]Provider, 0, len(s.Providers))
	for _, id := range s.Providers {
		if p, ok := c.Provider(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// LicensedStates resolves a provider's license state ids. Unknown ids are skipped.
func (c *Catalog) LicensedStates(p Provider) []State {
	out := make([]State, 0, len(p.States))
	for _, id := range p.States {
		if s, ok := c.State(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// Alert returns the alert message registered under key.
func (c *Catalog) Alert(key string) (AlertMessage, error) {
	a, ok := c.alerts[key]
	if !ok {
		return AlertMessage{}, fmt.Errorf("alert %q: %w", key, ErrNotFound)
	}
	return a, nil
}

// AlertKeys returns the registered alert keys.
func (c *Catalog) AlertKeys() []string {
	keys := make([]string, 0, len(c.alerts))
	for k := range c.alerts {
		keys = append(keys, k)
	}
	return keys
}

// TelHref returns a tel: URL built from the digits of the site phone number.
func (c *Catalog) TelHref() string {
	return "tel:" + digitsOnly(c.Site.Phone)
}

// MailtoHref returns a mailto: URL for the site email.
func (c *Catalog) MailtoHref() string {
	return "mailto:" + c.Site.Email
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
