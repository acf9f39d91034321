package catalog

import (
	"errors"
	"fmt"
)

// Validate reports dangling references and out-of-range enumerations.
// Rendering tolerates all of these; the check exists for operators editing
// a catalog file.
func (c *Catalog) Validate() error {
	var errs []error
	for _, s := range c.states {
		if s.Status != StatusActive && s.Status != StatusComingSoon {
			errs = append(errs, fmt.Errorf("state %q: invalid status %q", s.ID, s.Status))
		}
		for _, pid := range s.Providers {
			if _, ok := c.Provider(pid); !ok {
				errs = append(errs, fmt.Errorf("state %q: provider %q: %w", s.ID, pid, ErrNotFound))
			}
		}
	}
	for _, p := range c.providers {
		if p.Availability != AvailabilityAvailable && p.Availability != AvailabilityLimited {
			errs = append(errs, fmt.Errorf("provider %q: invalid availability %q", p.ID, p.Availability))
		}
		for _, sid := range p.States {
			if _, ok := c.State(sid); !ok {
				errs = append(errs, fmt.Errorf("provider %q: state %q: %w", p.ID, sid, ErrNotFound))
			}
		}
	}
	for i, n := range c.Navigation {
		if n.Href == "" {
			errs = append(errs, fmt.Errorf("navigation entry #%d (%s) has no href", i, n.Name))
		}
	}
	return errors.Join(errs...)
}
