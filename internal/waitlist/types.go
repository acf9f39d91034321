package waitlist

import "time"

// Kind is what a visitor asked to be notified about.
type Kind string

const (
	KindState    Kind = "state"    // a coming-soon service area
	KindProvider Kind = "provider" // a provider's full profile
	KindPage     Kind = "page"     // a placeholder page going live
)

// Entry is one waitlist signup.
type Entry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Kind      Kind      `json:"kind"`
	Target    string    `json:"target"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// ListFilter controls which entries to return.
type ListFilter struct {
	Kind   Kind
	Target string
	Limit  int
	Offset int
}

// TargetCount is the number of signups for one kind/target pair.
type TargetCount struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// Stats summarizes the waitlist.
type Stats struct {
	Total    int           `json:"total"`
	ByTarget []TargetCount `json:"by_target"`
}
