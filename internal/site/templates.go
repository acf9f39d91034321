package site

// pageTemplates are parsed into one set. "layout" wraps every page; the
// other entries are page bodies named by Page.View plus shared partials.
var pageTemplates = map[string]string{
	"layout":               layoutTemplate,
	"footer":               footerTemplate,
	"waitlist-form":        waitlistTemplate,
	"placeholder-hero":     placeholderHeroTemplate,
	"home":                 homeTemplate,
	"locations":            locationsTemplate,
	"location-grid":        locationGridTemplate,
	"location-not-found":   locationNotFoundTemplate,
	"location-coming-soon": locationComingSoonTemplate,
	"location-detail":      locationDetailTemplate,
	"providers":            providersTemplate,
	"provider-not-found":   providerNotFoundTemplate,
	"provider-detail":      providerDetailTemplate,
	"services":             servicesTemplate,
	"faq":                  faqTemplate,
	"resources":            resourcesTemplate,
	"article":              articleTemplate,
	"contact":              contactTemplate,
	"not-found":            notFoundTemplate,
}

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Head.Title}}</title>
  <meta name="description" content="{{.Head.Description}}">
  {{- if .Head.Keywords}}
  <meta name="keywords" content="{{.Head.Keywords}}">
  {{- end}}
  {{- if .Head.Canonical}}
  <link rel="canonical" href="{{.Head.Canonical}}">
  {{- end}}
  {{- range $k, $v := .Head.OpenGraph}}
  <meta property="og:{{$k}}" content="{{$v}}">
  {{- end}}
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-mode="{{.Mode}}" data-view="{{.View}}" data-render-id="{{.RenderID}}">
  <a class="skip-link" href="#main">Skip to content</a>
  <header class="site-header">
    <div class="{{containerClass "xl"}} header-inner">
      <a class="brand" href="/">
        <span class="brand-mark" aria-hidden="true">NBH</span>
        <span class="brand-name">{{.SiteName}}</span>
      </a>
      <nav class="main-nav" aria-label="Main">
        {{.NavHTML}}
      </nav>
      <div class="header-actions">
        {{linkButton "Call Now" .Tel "ghost" "sm"}}
        {{externalButton "Book Appointment" .Booking "primary" "sm"}}
      </div>
      <button type="button" class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-controls="mobile-menu" aria-expanded="false">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
    </div>
    <div class="mobile-menu" id="mobile-menu" hidden>
      {{.Mobile}}
      <div class="mobile-actions">
        {{linkButton "Call Now" .Tel "outline" "md"}}
        {{externalButton "Book Appointment" .Booking "primary" "md"}}
      </div>
    </div>
  </header>
  {{- if .Alerts}}
  <div class="{{containerClass "xl"}} alerts">
    {{- range .Alerts}}
    {{.}}
    {{- end}}
  </div>
  {{- end}}
  <main id="main">
    {{.Body}}
  </main>
  {{template "footer" .Footer}}
  <script src="/static/script.js"></script>
</body>
</html>`

const footerTemplate = `<footer class="site-footer">
  <div class="{{containerClass "xl"}} footer-grid">
    <div class="footer-brand">
      <a class="brand" href="/"><span class="brand-mark" aria-hidden="true">NBH</span><span class="brand-name">{{.Info.Name}}</span></a>
      <p class="muted">{{.Info.Description}}</p>
      <ul class="social-links">
        {{- range .Social}}
        <li><a href="{{safeURL .Href}}" target="_blank" rel="noopener noreferrer" aria-label="{{.Label}}">{{.Label}}</a></li>
        {{- end}}
      </ul>
    </div>
    <div>
      <h3 class="footer-heading">Service Areas</h3>
      <ul>
        {{- range .ActiveStates}}
        <li><a href="/locations/{{.ID}}">{{.Name}}</a></li>
        {{- end}}
      </ul>
      {{- if .Expanding}}
      <p class="footer-note">{{.Expanding}}</p>
      {{- end}}
    </div>
    <div>
      <h3 class="footer-heading">Quick Links</h3>
      <ul>
        {{- range .QuickLinks}}
        <li><a href="{{safeURL .Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a></li>
        {{- end}}
      </ul>
    </div>
    <div>
      <h3 class="footer-heading">Contact</h3>
      <ul>
        <li><a href="{{safeURL .Tel}}">{{.Info.Phone}}</a></li>
        <li><a href="{{safeURL .Mailto}}">{{.Info.Email}}</a></li>
      </ul>
      <div class="footer-emergency">
        <strong>Mental Health Emergency?</strong>
        <p>Call <a href="{{safeURL .Emergency}}">{{.Info.EmergencyPhone}}</a> for immediate crisis support.</p>
      </div>
    </div>
  </div>
  <div class="{{containerClass "xl"}} footer-bottom">
    <p>&copy; {{.Year}} {{.Info.Name}}. All rights reserved.</p>
    <ul class="legal-links">
      {{- range .Legal}}
      <li><a href="{{safeURL .Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a></li>
      {{- end}}
    </ul>
  </div>
</footer>`

const waitlistTemplate = `<div id="waitlist" class="waitlist">
  {{- if .Prompt}}
  <p class="waitlist-prompt">{{.Prompt}}</p>
  {{- end}}
  <p class="waitlist-status" data-waitlist-status role="status" hidden></p>
  <form class="waitlist-form" method="post" action="/api/waitlist" data-waitlist>
    <input type="hidden" name="kind" value="{{.Kind}}">
    <input type="hidden" name="target" value="{{.Target}}">
    <input type="hidden" name="redirect" value="{{.Redirect}}">
    <label class="sr-only" for="waitlist-name-{{.Target}}">Name</label>
    <input class="input" id="waitlist-name-{{.Target}}" type="text" name="name" placeholder="Your name" autocomplete="name">
    <label class="sr-only" for="waitlist-email-{{.Target}}">Email</label>
    <input class="input" id="waitlist-email-{{.Target}}" type="email" name="email" placeholder="you@example.com" autocomplete="email" required>
    {{submitButton .Label "primary"}}
  </form>
</div>`

// placeholderHeroTemplate is the dark image hero shared by the
// under-construction pages.
const placeholderHeroTemplate = `<section class="{{sectionClass "lg" "dark"}} hero-image">
  <img class="hero-backdrop" src="{{safeURL .Image}}" alt="" aria-hidden="true">
  <div class="{{containerClass "md"}} text-center">
    {{badge .Badge "secondary"}}
    <h1 class="heading-1">{{.Heading}}</h1>
    <p class="body-large">{{.Intro}}</p>
  </div>
</section>`

const homeTemplate = `<section class="{{sectionClass "lg" "default"}} hero">
  <div class="{{containerClass "xl"}} hero-grid">
    <div>
      {{badge "Virtual Care Available" "primary"}}
      <h1 class="heading-1"><span class="text-gradient">Mental Health Care</span><br>You Can Trust</h1>
      <p class="body-large">Professional psychiatric services from the comfort of your home. Licensed providers in {{range $i, $s := .ActiveStates}}{{if $i}}, {{end}}{{$s.State.Name}}{{end}} ready to help you thrive.</p>
      <div class="button-row">
        {{externalButton "Book Appointment" .External.BookAppointment "primary" "xl"}}
        {{linkButton "Call for Consultation" .Tel "outline" "xl"}}
      </div>
      <ul class="trust-markers">
        <li>HIPAA Compliant</li>
        <li>Same Week Appointments</li>
        <li>Expert Providers</li>
      </ul>
    </div>
    <div class="hero-visual">
      <img src="/images/general/Group%20Hug.jpg" alt="Mental Health Support" width="600" height="500">
      <div class="floating-card glass">
        <div class="avatars">
          {{- range .Hero}}
          <img class="avatar" src="{{safeURL .Image}}" alt="{{.Name}}" width="40" height="40">
          {{- end}}
        </div>
        <p class="font-semibold">{{len .Team}}+ Expert Providers</p>
        <p class="muted">Ready to help you today</p>
      </div>
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "muted"}}">
  <div class="{{containerClass "lg"}}">
    <div class="section-heading">
      <h2 class="heading-2">We Serve Your <span class="text-gradient">Community</span></h2>
      <p class="body-large">Virtual mental health services licensed in multiple states, with providers who understand your local community</p>
    </div>
    <div class="card-grid cols-3">
      {{- range .ActiveStates}}
      {{stateCard .}}
      {{- end}}
    </div>
    {{- if .ComingSoon}}
    <div class="expanding">
      <h3>Expanding Soon</h3>
      <p class="muted">We're working to bring our services to more communities:</p>
      <div class="badge-row">
        {{- range .ComingSoon}}
        <a href="/locations/{{.ID}}">{{badge (printf "%s - 2025" .Name) "secondary"}}</a>
        {{- end}}
      </div>
    </div>
    {{- end}}
  </div>
</section>

<section class="{{sectionClass "lg" "default"}}">
  <div class="{{containerClass "lg"}}">
    <div class="section-heading">
      <h2 class="heading-2">Comprehensive <span class="text-gradient-secondary">Mental Health Services</span></h2>
      <p class="body-large">Evidence-based treatment tailored to your unique needs</p>
    </div>
    <div class="card-grid cols-4">
      {{- range .Services}}
      {{serviceCard . 3}}
      {{- end}}
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "gradient"}}">
  <div class="{{containerClass "lg"}}">
    <div class="section-heading">
      <h2 class="heading-2">Meet Your <span class="text-gradient">Care Team</span></h2>
      <p class="body-large">Board-certified psychiatric nurse practitioners with years of experience</p>
    </div>
    <div class="card-grid cols-3">
      {{- range .Team}}
      {{providerCard . 3}}
      {{- end}}
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "dark"}} cta">
  <div class="{{containerClass "md"}} text-center">
    <h2 class="heading-2">Ready to Start Your Journey?</h2>
    <p class="body-large">Take the first step towards better mental health. Our compassionate team is here to support you.</p>
    <div class="button-row center">
      {{externalButton "Schedule Your First Visit" .External.BookAppointment "accent" "xl"}}
      {{linkButton "Have Questions?" "/faq" "outline" "xl"}}
    </div>
  </div>
</section>`

const locationsTemplate = `<section class="{{sectionClass "lg" "gradient"}}">
  <div class="{{containerClass "lg"}}">
    <div class="section-heading">
      <h1 class="heading-1">Our <span class="text-gradient">Service Locations</span></h1>
      <p class="body-large">Virtual mental health care across multiple states. Find licensed providers in your area who understand your community and are ready to help.</p>
    </div>

    <form class="location-filter" id="location-filter" method="get" action="/locations" data-status="{{.Filter.Status}}" role="search">
      <label class="sr-only" for="location-query">Search by state name</label>
      <input class="input" id="location-query" type="search" name="q" value="{{.Filter.Query}}" placeholder="Search by state name..." autocomplete="off">
      <div class="filter-buttons" role="group" aria-label="Filter by status">
        {{- range .Options}}
        <button type="submit" name="status" value="{{.Value}}" class="btn {{if .Selected}}btn-primary{{else}}btn-outline{{end}} btn-md" aria-pressed="{{.Selected}}">{{.Label}}</button>
        {{- end}}
      </div>
    </form>

    <div class="stats">
      <div class="stat"><span class="stat-value">{{.ActiveCount}}</span><p class="muted">Active States</p></div>
      <div class="stat"><span class="stat-value">{{.ProviderCount}}</span><p class="muted">Licensed Providers</p></div>
      <div class="stat"><span class="stat-value">1000+</span><p class="muted">Patients Served</p></div>
    </div>
  </div>
</section>

<section class="{{sectionClass "md" "default"}}">
  <div class="{{containerClass "lg"}}">
    <p class="muted result-count" aria-live="polite">Showing <span id="location-count">{{.Grid.Len}}</span> locations</p>
    <div id="location-grid">
      {{template "location-grid" .Grid}}
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "muted"}}">
  <div class="{{containerClass "md"}} text-center">
    <h2 class="heading-2">Coverage Map</h2>
    <p class="body-large">Licensed to provide virtual care across the Mid-Atlantic region</p>
    <div class="map-placeholder">
      <p class="font-semibold">Interactive Map Coming Soon</p>
      <p class="muted">View our service areas at a glance</p>
      <div class="badge-row center">
        {{- range .ActiveStates}}
        {{badge .ShortName "success"}}
        {{- end}}
      </div>
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "default"}} cta">
  <div class="{{containerClass "md"}} text-center">
    <h2 class="heading-2">Can't Find Your State?</h2>
    <p class="body-large">We're actively working to expand our services to more states. Join our waitlist to be notified when we're available in your area.</p>
    <div class="button-row center">
      {{linkButton "Join Expansion Waitlist" "/locations?status=coming-soon" "primary" "lg"}}
      {{linkButton "Contact Us" "/contact" "outline" "lg"}}
    </div>
  </div>
</section>`

// locationGridTemplate receives a Grid. Every card carries its state id so
// the exported site can filter without a server.
const locationGridTemplate = `<div class="card-grid cols-3">
  {{- range .Cards}}
  <div class="grid-item" data-state-id="{{.State.ID}}">{{stateCard .}}</div>
  {{- end}}
</div>
<div class="empty-state" data-empty{{if .Cards}} hidden{{end}}>
  <p class="muted">No locations found matching your search.</p>
  <div data-clear>{{linkButton "Clear Filters" "/locations" "outline" "md"}}</div>
</div>`

const locationNotFoundTemplate = `<section class="{{sectionClass "lg" "default"}}">
  <div class="{{containerClass "md"}} text-center">
    <h1 class="heading-2">Location not found</h1>
    {{linkButton "View All Locations" "/locations" "primary" "md"}}
  </div>
</section>`

const locationComingSoonTemplate = `<section class="{{sectionClass "lg" "gradient"}}">
  <div class="{{containerClass "md"}} text-center">
    {{badge "Coming Soon" "secondary"}}
    <h1 class="heading-2">{{.State.Name}}</h1>
    <p class="body-large">We're excited to announce that {{.Info.Name}} will be expanding to {{.State.Name}} in 2025. Join our waitlist to be notified when we launch.</p>
    {{template "waitlist-form" .Waitlist}}
    <div class="button-row center">
      {{linkButton "View Current Locations" "/locations" "outline" "lg"}}
    </div>
  </div>
</section>`

const locationDetailTemplate = `<section class="{{sectionClass "lg" "dark"}} hero-image">
  <img class="hero-backdrop" src="{{safeURL .State.Image}}" alt="" aria-hidden="true">
  <div class="{{containerClass "lg"}}">
    <h1 class="heading-1">Mental Health Care in {{.State.Name}}</h1>
    <p class="body-large">{{.State.Description}}. Virtual appointments available throughout {{.State.ShortName}}.</p>
    <div class="badge-row">
      {{dotBadge "Now Accepting Patients" "success"}}
      {{badge (printf "%d Providers" (len .Providers)) "info"}}
      {{badge (printf "%d+ Insurance Plans" (len .State.Insurances)) "secondary"}}
    </div>
    <div class="button-row">
      {{externalButton (printf "Book %s Appointment" .State.ShortName) .External.BookAppointment "accent" "xl"}}
      {{linkButton "Call for Info" .Tel "outline" "xl"}}
    </div>
  </div>
</section>

<section class="{{sectionClass "md" "muted"}}">
  <div class="{{containerClass "lg"}} card-grid cols-3">
    {{- range .Features}}
    <div class="card text-center">
      <div class="card-header">
        <span class="icon icon-{{.Icon}}" aria-hidden="true"></span>
        <h3 class="card-title">{{.Title}}</h3>
        <p class="card-description">{{.Description}}</p>
      </div>
    </div>
    {{- end}}
  </div>
</section>

<section class="{{sectionClass "lg" "default"}}">
  <div class="{{containerClass "lg"}}">
    <div class="section-heading">
      <h2 class="heading-2">Your {{.State.Name}} <span class="text-gradient">Mental Health Team</span></h2>
      <p class="body-large">Expert providers licensed to practice in {{.State.ShortName}}</p>
    </div>
    <div class="card-grid cols-2">
      {{- range .Providers}}
      {{providerCard . 0}}
      {{- end}}
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "muted"}}">
  <div class="{{containerClass "md"}} text-center">
    <h2 class="heading-2">Insurance <span class="text-gradient-secondary">Accepted</span></h2>
    <p class="body-large">We accept most major insurance plans in {{.State.Name}}</p>
    <div class="badge-row center">
      {{- range .State.Insurances}}
      {{badge . "primary"}}
      {{- end}}
    </div>
    <p class="muted">Don't see your insurance? We also offer competitive self-pay rates and can provide superbills for out-of-network reimbursement.</p>
    {{linkButton "Verify Your Insurance" .Tel "outline" "md"}}
  </div>
</section>

<section class="{{sectionClass "lg" "gradient"}} cta">
  <div class="{{containerClass "md"}} text-center">
    <h2 class="heading-2">Start Your Mental Health Journey in {{.State.Name}}</h2>
    <p class="body-large">Professional, compassionate care is just a click away. Book your virtual appointment today.</p>
    <div class="button-row center">
      {{externalButton "Book Appointment" .External.BookAppointment "primary" "xl"}}
      {{linkButton "View Other Locations" "/locations" "outline" "xl"}}
    </div>
  </div>
</section>`

const providersTemplate = `<section class="{{sectionClass "lg" "gradient"}}">
  <div class="{{containerClass "lg"}}">
    <div class="section-heading">
      {{badge "Expert Care Team" "primary"}}
      <h1 class="heading-1">Meet Your <span class="text-gradient">Mental Health Providers</span></h1>
      <p class="body-large">Board-certified psychiatric nurse practitioners dedicated to your mental wellness. Each provider brings unique expertise and a compassionate approach to care.</p>
    </div>
    <div class="stats">
      {{- range .Trust}}
      <div class="stat">
        <span class="icon icon-{{.Icon}}" aria-hidden="true"></span>
        <div class="font-semibold">{{.Title}}</div>
        <p class="muted">{{.Description}}</p>
      </div>
      {{- end}}
    </div>
  </div>
</section>

<section class="{{sectionClass "lg" "default"}}">
  <div class="{{containerClass "lg"}} card-grid cols-2">
    {{- range .Providers}}
    {{providerCard . 0}}
    {{- end}}
  </div>
</section>

<section class="{{sectionClass "lg" "muted"}}">
  <div class="{{containerClass "lg"}}">
    <h2 class="heading-2 text-center">Why Choose <span class="text-gradient-secondary">Our Providers</span></h2>
    <ul class="feature-list cols-2">
      {{- range .Why}}
      <li>
        <h3 class="font-semibold">{{.Title}}</h3>
        <p class="muted">{{.Description}}</p>
      </li>
      {{- end}}
    </ul>
  </div>
</section>

<section class="{{sectionClass "lg" "default"}} cta">
  <div class="{{containerClass "md"}} text-center">
    <h2 class="heading-2">Ready to Meet with a Provider?</h2>
    <p class="body-large">Schedule your initial consultation today and take the first step towards better mental health.</p>
    <div class="button-row center">
      {{externalButton "Book Appointment" .External.BookAppointment "primary" "xl"}}
      {{linkButton "Call Us" .Tel "outline" "xl"}}
    </div>
  </div>
</section>`

const providerNotFoundTemplate = `<section class="{{sectionClass "lg" "dark"}} hero-image">
  <div class="{{containerClass "md"}} text-center">
    {{badge "Profile Not Found" "secondary"}}
    <h1 class="heading-1">Provider Profile</h1>
    <p class="body-large">This provider profile is not available yet. Please check back soon or view our other providers.</p>
    <div class="button-row center">
      {{linkButton "View All Providers" "/providers" "secondary" "lg"}}
      {{linkButton "Back to Home" "/" "outline" "lg"}}
    </div>
  </div>
</section>`

const providerDetailTemplate = `{{with .Card}}<section class="{{sectionClass "lg" "dark"}} hero-image">
  <img class="hero-backdrop" src="{{safeURL .Provider.Image}}" alt="" aria-hidden="true">
  <div class="{{containerClass "md"}} text-center">
    {{badge "Full Profile Coming Soon" "secondary"}}
    <img class="profile-photo" src="{{safeURL .Provider.Image}}" alt="{{.Provider.Name}}" width="128" height="128">
    <h1 class="heading-1">{{.Provider.Name}}</h1>
    <p class="profile-credentials">{{.Provider.Credentials}} &bull; {{.Provider.Title}}</p>
    <div class="body-large">{{.Bio}}</div>
    <div class="quick-info glass">
      <h2>Quick Info:</h2>
      <p class="muted">Specialties:</p>
      <div class="badge-row center">
        {{- range .Provider.Specialties}}
        {{badge . "primary"}}
        {{- end}}
      </div>
      <p class="muted">Licensed States:</p>
      <div class="badge-row center">
        {{- range .Provider.States}}
        {{badge (upper .) "secondary"}}
        {{- end}}
      </div>
    </div>
    <p class="muted">Full provider profiles with detailed information, credentials, and booking options are being developed.</p>
  </div>
</section>{{end}}

<section class="{{sectionClass "md" "default"}}">
  <div class="{{containerClass "sm"}} text-center">
    {{template "waitlist-form" .Waitlist}}
    <div class="button-row center">
      {{linkButton "Back to Providers" "/providers" "secondary" "lg"}}
      {{externalButton (printf "Book with %s" .Card.FirstName) .External.BookAppointment "outline" "lg"}}
    </div>
  </div>
</section>`

const servicesTemplate = `{{template "placeholder-hero" .}}
<section class="{{sectionClass "md" "default"}}">
  <div class="{{containerClass "lg"}}">
    <h2 class="heading-3">{{.ListTitle}}</h2>
    <div class="card-grid cols-2">
      {{- range .Services}}
      {{serviceCard . 0}}
      {{- end}}
    </div>
  </div>
</section>
<section class="{{sectionClass "md" "muted"}}">
  <div class="{{containerClass "sm"}} text-center">
    {{template "waitlist-form" .Waitlist}}
    {{linkButton "Back to Home" "/" "secondary" "lg"}}
  </div>
</section>`

const faqTemplate = `{{template "placeholder-hero" .}}
<section class="{{sectionClass "md" "default"}}">
  <div class="{{containerClass "lg"}}">
    <h2 class="heading-3">{{.ListTitle}}</h2>
    <div class="card-grid cols-2">
      {{- range .Topics}}
      {{topicCard .}}
      {{- end}}
    </div>
    {{- if .Categories}}
    <div class="badge-row center">
      {{- range .Categories}}
      {{badge . "info"}}
      {{- end}}
    </div>
    {{- end}}
  </div>
</section>
<section class="{{sectionClass "md" "muted"}}">
  <div class="{{containerClass "sm"}} text-center">
    {{template "waitlist-form" .Waitlist}}
    {{linkButton "Back to Home" "/" "accent" "lg"}}
  </div>
</section>`

const resourcesTemplate = `{{template "placeholder-hero" .}}
<section class="{{sectionClass "md" "default"}}">
  <div class="{{containerClass "lg"}}">
    <h2 class="heading-3">{{.ListTitle}}</h2>
    <div class="card-grid cols-2">
      {{- range .Topics}}
      {{topicCard .}}
      {{- end}}
    </div>
    {{- if .Articles}}
    <h2 class="heading-3">Articles</h2>
    <ul class="article-list">
      {{- range .Articles}}
      <li><a href="{{safeURL .Href}}">{{.Title}}</a></li>
      {{- end}}
    </ul>
    {{- end}}
  </div>
</section>
<section class="{{sectionClass "md" "muted"}}">
  <div class="{{containerClass "sm"}} text-center">
    {{template "waitlist-form" .Waitlist}}
    {{linkButton "Back to Home" "/" "secondary" "lg"}}
  </div>
</section>`

const articleTemplate = `<article class="{{sectionClass "lg" "default"}}">
  <div class="{{containerClass "md"}} prose">
    <p><a href="/resources">&larr; All resources</a></p>
    <h1 class="heading-1">{{.Title}}</h1>
    {{.Body}}
  </div>
</article>`

const contactTemplate = `<section class="{{sectionClass "lg" "dark"}} hero-image">
  <img class="hero-backdrop" src="/images/general/Guy%20Looking%20at%20Ocean.jpg" alt="" aria-hidden="true">
  <div class="{{containerClass "md"}} text-center">
    {{badge "Get In Touch" "primary"}}
    <h1 class="heading-1">Contact Us</h1>
    <p class="body-large">We're here to help you on your mental health journey. Our contact form is being updated, but you can still reach us through the methods below.</p>
    <div class="contact-methods glass">
      <h2>Available Contact Methods:</h2>
      <a class="contact-method" href="{{safeURL .Tel}}">
        <p class="font-semibold">Call Us</p>
        <p class="muted">{{.Info.Phone}}</p>
      </a>
      <a class="contact-method" href="{{safeURL .Mailto}}">
        <p class="font-semibold">Email Us</p>
        <p class="muted">{{.Info.Email}}</p>
      </a>
      <div class="contact-method">
        <p class="font-semibold">Service Areas</p>
        <p class="muted">{{range $i, $s := .ServiceAreas}}{{if $i}}, {{end}}{{$s.ShortName}}{{end}} (Virtual)</p>
      </div>
      <div class="contact-method">
        <p class="font-semibold">Response Time</p>
        <p class="muted">{{.ResponseTime}}</p>
      </div>
    </div>
    <div class="emergency-box">
      <p class="font-semibold">Mental Health Emergency?</p>
      <p>Call <a href="{{safeURL .Emergency}}">{{.Info.EmergencyPhone}}</a> for immediate crisis support</p>
    </div>
    <div class="button-row center">
      {{linkButton "Back to Home" "/" "secondary" "lg"}}
      {{linkButton "Call Now" .Tel "primary" "lg"}}
    </div>
  </div>
</section>
<section class="{{sectionClass "md" "default"}}">
  <div class="{{containerClass "sm"}} text-center">
    {{template "waitlist-form" .Waitlist}}
  </div>
</section>`

const notFoundTemplate = `<section class="{{sectionClass "lg" "default"}}">
  <div class="{{containerClass "md"}} text-center">
    <h1 class="heading-2">Page Not Found</h1>
    <p class="body-large">We couldn't find the page you were looking for.</p>
    <div class="button-row center">
      {{linkButton "Back to Home" "/" "primary" "lg"}}
      {{linkButton "Contact Us" "/contact" "outline" "lg"}}
    </div>
  </div>
</section>`
