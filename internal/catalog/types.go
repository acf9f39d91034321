package catalog

// StateStatus reports whether a state is currently served.
type StateStatus string

const (
	StatusActive     StateStatus = "active"
	StatusComingSoon StateStatus = "coming-soon"
)

// Availability describes how open a provider's schedule is.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityLimited   Availability = "limited"
)

// State is a U.S. jurisdiction in which the service is offered or planned.
type State struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	ShortName   string      `yaml:"short_name" json:"short_name"`
	Status      StateStatus `yaml:"status" json:"status"`
	Image       string      `yaml:"image" json:"image"`
	Description string      `yaml:"description" json:"description"`
	Providers   []string    `yaml:"providers" json:"providers"`
	Insurances  []string    `yaml:"insurances" json:"insurances"`
}

// IsActive reports whether the state is accepting patients.
func (s State) IsActive() bool { return s.Status == StatusActive }

// Provider is a licensed clinician profile shown on the site.
type Provider struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	Credentials  string       `yaml:"credentials" json:"credentials"`
	Title        string       `yaml:"title" json:"title"`
	Image        string       `yaml:"image" json:"image"`
	Specialties  []string     `yaml:"specialties" json:"specialties"`
	Bio          string       `yaml:"bio" json:"bio"`
	Availability Availability `yaml:"availability" json:"availability"`
	States       []string     `yaml:"states" json:"states"`
}

// Service is one offering listed on the services and home pages.
type Service struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// NavEntry is a labelled link in the main navigation.
type NavEntry struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// SiteInfo holds the organization's public contact details.
type SiteInfo struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	URL            string `yaml:"url"`
	Phone          string `yaml:"phone"`
	Email          string `yaml:"email"`
	EmergencyPhone string `yaml:"emergency_phone"`
}

// Insurance is an accepted insurance carrier.
type Insurance struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

// SocialLinks are the outbound social media profile URLs.
type SocialLinks struct {
	Facebook  string `yaml:"facebook"`
	Twitter   string `yaml:"twitter"`
	Instagram string `yaml:"instagram"`
	LinkedIn  string `yaml:"linkedin"`
}

// ExternalLinks are third-party booking, portal and referral URLs.
type ExternalLinks struct {
	PatientPortal   string `yaml:"patient_portal"`
	SendReferral    string `yaml:"send_referral"`
	BookAppointment string `yaml:"book_appointment"`
}

// AlertMessage is a site-wide banner message keyed by name in the catalog.
type AlertMessage struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Type    string `yaml:"type"`
}

// Topic is a titled blurb used on the placeholder pages (FAQ, resources, services).
type Topic struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// document is the on-disk shape of the catalog YAML.
type document struct {
	Site           SiteInfo                `yaml:"site"`
	Navigation     []NavEntry              `yaml:"navigation"`
	States         []State                 `yaml:"states"`
	Providers      []Provider              `yaml:"providers"`
	Services       []Service               `yaml:"services"`
	Insurances     []Insurance             `yaml:"insurances"`
	FAQCategories  []string                `yaml:"faq_categories"`
	FAQTopics      []Topic                 `yaml:"faq_topics"`
	ResourceTopics []Topic                 `yaml:"resource_topics"`
	Social         SocialLinks             `yaml:"social"`
	External       ExternalLinks           `yaml:"external"`
	Alerts         map[string]AlertMessage `yaml:"alerts"`
}
