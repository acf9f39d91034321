package waitlist

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

// Pages that show a "Notify When Available" form.
var placeholderPages = map[string]bool{
	"services":  true,
	"faq":       true,
	"resources": true,
	"contact":   true,
}

// Targets decides which kind/target pairs accept signups.
type Targets interface {
	Check(kind Kind, target string) error
}

// CatalogTargets accepts coming-soon states, known providers and the
// placeholder pages.
type CatalogTargets struct {
	Catalog *catalog.Catalog
}

// Check returns an error describing why the pair is not accepted.
func (t CatalogTargets) Check(kind Kind, target string) error {
	switch kind {
	case KindState:
		s, ok := t.Catalog.State(target)
		if !ok {
			return fmt.Errorf("unknown state %q", target)
		}
		if s.IsActive() {
			return fmt.Errorf("%s is already accepting patients", s.Name)
		}
		return nil
	case KindProvider:
		if _, ok := t.Catalog.Provider(target); !ok {
			return fmt.Errorf("unknown provider %q", target)
		}
		return nil
	case KindPage:
		if !placeholderPages[target] {
			return fmt.Errorf("unknown page %q", target)
		}
		return nil
	}
	return fmt.Errorf("invalid kind %q: must be one of state, provider, page", kind)
}

// validate normalizes and checks a signup before it is stored.
func validate(e *Entry, targets Targets) error {
	e.Email = strings.TrimSpace(e.Email)
	if e.Email == "" {
		return fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(e.Email)
	if err != nil || addr.Address != e.Email || !strings.Contains(addr.Address, ".") {
		return fmt.Errorf("invalid email %q", e.Email)
	}
	if len(e.Name) > 200 {
		return fmt.Errorf("name is too long")
	}
	if e.Target == "" {
		return fmt.Errorf("target is required")
	}
	return targets.Check(e.Kind, e.Target)
}
