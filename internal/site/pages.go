package site

import (
	"html/template"
	"net/http"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

// Page is a composed route: which body template to render, the data it
// needs, and the head metadata. Fallback views carry Status 404.
type Page struct {
	Path        string
	View        string
	Title       string
	Description string
	Status      int
	Alerts      []string // catalog alert keys shown under the header
	Data        any
}

// NotFound reports whether the page is a fallback view.
func (p Page) NotFound() bool { return p.Status == http.StatusNotFound }

// shared is embedded in every view.
type shared struct {
	Info      catalog.SiteInfo
	External  catalog.ExternalLinks
	Tel       string
	Mailto    string
	Emergency string
}

func (s *Site) shared() shared {
	return shared{
		Info:      s.Catalog.Site,
		External:  s.Catalog.External,
		Tel:       s.Catalog.TelHref(),
		Mailto:    s.Catalog.MailtoHref(),
		Emergency: "tel:" + s.Catalog.Site.EmergencyPhone,
	}
}

// waitlistForm is the "Join Waitlist" / "Notify When Available" form.
type waitlistForm struct {
	Kind     string
	Target   string
	Redirect string
	Label    string
	Prompt   string
}

type feature struct {
	Title       string
	Description string
	Icon        string
}

type homeView struct {
	shared
	Hero         []catalog.Provider // avatars in the hero card
	ActiveStates []stateCard
	ComingSoon   []catalog.State
	Services     []catalog.Service
	Team         []providerCard
}

// Home composes "/".
func (s *Site) Home() Page {
	providers := s.Catalog.Providers()
	hero := providers
	if len(hero) > 3 {
		hero = hero[:3]
	}
	return Page{
		Path:        "/",
		View:        "home",
		Title:       "Virtual Mental Health Care",
		Description: s.Catalog.Site.Description,
		Status:      http.StatusOK,
		Alerts:      []string{"emergency"},
		Data: homeView{
			shared:       s.shared(),
			Hero:         hero,
			ActiveStates: s.stateCards(s.Catalog.StatesByStatus(catalog.StatusActive)),
			ComingSoon:   s.Catalog.StatesByStatus(catalog.StatusComingSoon),
			Services:     s.Catalog.Services,
			Team:         s.providerCards(providers),
		},
	}
}

type statusOption struct {
	Value    catalog.StatusFilter
	Label    string
	Selected bool
}

// Grid is the filtered locations listing. It is also rendered on its own
// for the live filter endpoints.
type Grid struct {
	Cards []stateCard
}

// IDs returns the state ids in the grid, in order.
func (g Grid) IDs() []string {
	ids := make([]string, 0, len(g.Cards))
	for _, c := range g.Cards {
		ids = append(ids, c.State.ID)
	}
	return ids
}

// Len is the number of states in the grid.
func (g Grid) Len() int { return len(g.Cards) }

type locationsView struct {
	shared
	Filter        catalog.LocationFilter
	Options       []statusOption
	Grid          Grid
	ActiveCount   int
	ProviderCount int
	ActiveStates  []catalog.State
}

// Locations composes "/locations" with the listing narrowed by f.
func (s *Site) Locations(f catalog.LocationFilter) Page {
	status := f.Status
	if status == "" {
		status = catalog.FilterAll
	}
	opts := []statusOption{
		{Value: catalog.FilterAll, Label: "All"},
		{Value: catalog.FilterActive, Label: "Active"},
		{Value: catalog.FilterComingSoon, Label: "Coming Soon"},
	}
	for i := range opts {
		opts[i].Selected = opts[i].Value == status
	}

	active := s.Catalog.StatesByStatus(catalog.StatusActive)
	return Page{
		Path:        "/locations",
		View:        "locations",
		Title:       "Service Locations",
		Description: "Virtual mental health care across multiple states. Find licensed providers in your area.",
		Status:      http.StatusOK,
		Data: locationsView{
			shared:        s.shared(),
			Filter:        f,
			Options:       opts,
			Grid:          s.FilterLocations(f),
			ActiveCount:   len(active),
			ProviderCount: len(s.Catalog.Providers()),
			ActiveStates:  active,
		},
	}
}

// FilterLocations returns the listing for f in catalog order.
func (s *Site) FilterLocations(f catalog.LocationFilter) Grid {
	return Grid{Cards: s.stateCards(catalog.FilterStates(s.Catalog.States(), f))}
}

type locationView struct {
	shared
	State     catalog.State
	Providers []providerCard
	Features  []feature
	Waitlist  waitlistForm
}

type missingView struct {
	shared
	ID string
}

// Location composes "/locations/{id}". Unknown ids get the "Location not
// found" view and coming-soon states get the waitlist view.
func (s *Site) Location(id string) Page {
	path := "/locations/" + id
	st, ok := s.Catalog.State(id)
	if !ok {
		return Page{
			Path:   path,
			View:   "location-not-found",
			Title:  "Location not found",
			Status: http.StatusNotFound,
			Data:   missingView{shared: s.shared(), ID: id},
		}
	}

	if !st.IsActive() {
		return Page{
			Path:        path,
			View:        "location-coming-soon",
			Title:       st.Name + " - Coming Soon",
			Description: st.Description,
			Status:      http.StatusOK,
			Data: locationView{
				shared: s.shared(),
				State:  st,
				Waitlist: waitlistForm{
					Kind:     "state",
					Target:   st.ID,
					Redirect: path,
					Label:    "Join Waitlist",
					Prompt:   "Be the first to know when we launch in " + st.Name + ".",
				},
			},
		}
	}

	return Page{
		Path:        path,
		View:        "location-detail",
		Title:       "Mental Health Care in " + st.Name,
		Description: st.Description + ". Virtual appointments available throughout " + st.ShortName + ".",
		Status:      http.StatusOK,
		Data: locationView{
			shared:    s.shared(),
			State:     st,
			Providers: s.providerCards(s.Catalog.ProvidersFor(st)),
			Features: []feature{
				{Title: "100% Virtual", Description: "No commute needed. Access care from anywhere in " + st.Name, Icon: "map-pin"},
				{Title: "Flexible Hours", Description: "Evening and weekend appointments available", Icon: "clock"},
				{Title: "Licensed in " + st.ShortName, Description: "All providers are fully licensed to practice in " + st.Name, Icon: "shield"},
			},
		},
	}
}

type providersView struct {
	shared
	Providers []providerCard
	Trust     []feature
	Why       []feature
}

var whyChoose = []feature{
	{Title: "Evidence-Based Treatment", Description: "All treatment plans are based on the latest research and clinical guidelines"},
	{Title: "Collaborative Approach", Description: "We work with you to develop personalized treatment plans that fit your life"},
	{Title: "Continuous Education", Description: "Our providers stay current with the latest developments in psychiatric care"},
	{Title: "Cultural Sensitivity", Description: "Respectful care that honors your background, identity, and values"},
	{Title: "Accessible Communication", Description: "Secure messaging between appointments for questions and support"},
	{Title: "Holistic Care", Description: "We consider all aspects of your health and wellbeing in treatment planning"},
}

// Providers composes "/providers".
func (s *Site) Providers() Page {
	return Page{
		Path:        "/providers",
		View:        "providers",
		Title:       "Meet Your Mental Health Providers",
		Description: "Board-certified psychiatric nurse practitioners dedicated to your mental wellness.",
		Status:      http.StatusOK,
		Data: providersView{
			shared:    s.shared(),
			Providers: s.providerCards(s.Catalog.Providers()),
			Trust: []feature{
				{Title: "Board Certified", Description: "All PMHNP-BC", Icon: "award"},
				{Title: "Highly Rated", Description: "4.9/5 Patient Satisfaction", Icon: "star"},
				{Title: "Experienced", Description: "15+ Years Combined", Icon: "clock"},
			},
			Why: whyChoose,
		},
	}
}

type providerView struct {
	shared
	Card     providerCard
	Waitlist waitlistForm
}

// Provider composes "/providers/{id}". Unknown ids get the "Profile Not
// Found" view.
func (s *Site) Provider(id string) Page {
	path := "/providers/" + id
	p, ok := s.Catalog.Provider(id)
	if !ok {
		return Page{
			Path:   path,
			View:   "provider-not-found",
			Title:  "Provider Profile",
			Status: http.StatusNotFound,
			Data:   missingView{shared: s.shared(), ID: id},
		}
	}

	cards := s.providerCards([]catalog.Provider{p})
	return Page{
		Path:        path,
		View:        "provider-detail",
		Title:       p.Name + ", " + p.Credentials,
		Description: p.Title,
		Status:      http.StatusOK,
		Data: providerView{
			shared: s.shared(),
			Card:   cards[0],
			Waitlist: waitlistForm{
				Kind:     "provider",
				Target:   p.ID,
				Redirect: path,
				Label:    "Notify When Available",
				Prompt:   "Get an email when " + p.Name + "'s full profile and booking go live.",
			},
		},
	}
}

// placeholderView backs the under-construction pages.
type placeholderView struct {
	shared
	Badge      string
	Heading    string
	Intro      string
	Image      string
	ListTitle  string
	Topics     []catalog.Topic
	Services   []catalog.Service
	Categories []string
	Articles   []articleLink
	Waitlist   waitlistForm
}

type articleLink struct {
	Title string
	Href  string
}

func (s *Site) notifyForm(page string) waitlistForm {
	return waitlistForm{
		Kind:     "page",
		Target:   page,
		Redirect: "/" + page,
		Label:    "Notify Me When Ready",
		Prompt:   "Leave your email and we'll let you know when this page is ready.",
	}
}

// Services composes "/services".
func (s *Site) Services() Page {
	return Page{
		Path:        "/services",
		View:        "services",
		Title:       "Our Services",
		Description: "Medication management, psychiatric evaluation, ADHD treatment and care for anxiety and depression.",
		Status:      http.StatusOK,
		Data: placeholderView{
			shared:    s.shared(),
			Badge:     "Under Construction",
			Heading:   "Our Services",
			Intro:     "We're currently updating our services page to better showcase our comprehensive mental health offerings. Check back soon for detailed information about our treatment options.",
			Image:     "/images/general/Pills.jpg",
			ListTitle: "What to Expect:",
			Services:  s.Catalog.Services,
			Waitlist:  s.notifyForm("services"),
		},
	}
}

// FAQ composes "/faq".
func (s *Site) FAQ() Page {
	return Page{
		Path:        "/faq",
		View:        "faq",
		Title:       "Frequently Asked Questions",
		Description: "Answers about our services, insurance, appointments, and virtual care.",
		Status:      http.StatusOK,
		Data: placeholderView{
			shared:     s.shared(),
			Badge:      "Under Development",
			Heading:    "Frequently Asked Questions",
			Intro:      "We're compiling answers to your most common questions about our services, insurance, appointments, and virtual care. This page will be your go-to resource for quick answers.",
			Image:      "/images/general/11062b_b7f119529e304e9ba3d047d4941cde54~mv2.jpg",
			ListTitle:  "FAQ Topics Coming:",
			Topics:     s.Catalog.FAQTopics,
			Categories: s.Catalog.FAQCategories,
			Waitlist:   s.notifyForm("faq"),
		},
	}
}

// Resources composes "/resources". Blog posts from the content document are
// listed when present.
func (s *Site) Resources() Page {
	var articles []articleLink
	for _, post := range s.Content.BlogPosts() {
		articles = append(articles, articleLink{Title: post.Title(), Href: "/resources/" + post.Slug})
	}
	return Page{
		Path:        "/resources",
		View:        "resources",
		Title:       "Mental Health Resources",
		Description: "Educational materials, self-help guides, and tools for your mental health journey.",
		Status:      http.StatusOK,
		Data: placeholderView{
			shared:    s.shared(),
			Badge:     "Coming Soon",
			Heading:   "Mental Health Resources",
			Intro:     "We're building a comprehensive resource library to support your mental health journey. Soon you'll find educational materials, self-help guides, and valuable tools here.",
			Image:     "/images/general/Writing on the Board.jpg",
			ListTitle: "Resources Coming Soon:",
			Topics:    s.Catalog.ResourceTopics,
			Articles:  articles,
			Waitlist:  s.notifyForm("resources"),
		},
	}
}

type articleView struct {
	shared
	Title string
	Body  template.HTML
}

// Article composes "/resources/{slug}" from a content-schema blog post.
func (s *Site) Article(slug string) Page {
	post, ok := s.Content.BlogPost(slug)
	if !ok {
		return s.NotFound("/resources/" + slug)
	}
	return Page{
		Path:        "/resources/" + slug,
		View:        "article",
		Title:       post.Title(),
		Description: post.SEO.Description,
		Status:      http.StatusOK,
		Data: articleView{
			shared: s.shared(),
			Title:  post.Title(),
			Body:   RenderSections(post.Content.Sections),
		},
	}
}

type contactView struct {
	shared
	ServiceAreas []catalog.State
	ResponseTime string
	Waitlist     waitlistForm
}

// Contact composes "/contact".
func (s *Site) Contact() Page {
	return Page{
		Path:        "/contact",
		View:        "contact",
		Title:       "Contact Us",
		Description: "Reach Nothing Better Health by phone or email.",
		Status:      http.StatusOK,
		Data: contactView{
			shared:       s.shared(),
			ServiceAreas: s.Catalog.StatesByStatus(catalog.StatusActive),
			ResponseTime: "Within 24-48 hours",
			Waitlist:     s.notifyForm("contact"),
		},
	}
}

// NotFound composes the generic 404 page.
func (s *Site) NotFound(path string) Page {
	return Page{
		Path:   path,
		View:   "not-found",
		Title:  "Page Not Found",
		Status: http.StatusNotFound,
		Data:   missingView{shared: s.shared(), ID: path},
	}
}
