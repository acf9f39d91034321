package content

// Metadata describes where the scraped content came from.
type Metadata struct {
	SiteName  string `json:"siteName"`
	BaseURL   string `json:"baseUrl"`
	ScrapedAt string `json:"scrapedAt"`
	Version   string `json:"version"`
}

// NavigationItem is one menu link.
type NavigationItem struct {
	Text       string `json:"text"`
	Href       string `json:"href"`
	IsExternal bool   `json:"isExternal"`
	Image      string `json:"image,omitempty"`
}

// SocialLink is a social profile link.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Navigation holds every menu found on the site.
type Navigation struct {
	MainMenu    []NavigationItem `json:"mainMenu"`
	FooterMenu  []NavigationItem `json:"footerMenu"`
	SocialLinks []SocialLink     `json:"socialLinks"`
}

// SEO is per-page search and social metadata.
type SEO struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Canonical   string            `json:"canonical"`
	OpenGraph   map[string]string `json:"openGraph"`
	Twitter     map[string]string `json:"twitter"`
}

// IsZero reports whether no SEO field is set.
func (s SEO) IsZero() bool {
	return s.Title == "" && s.Description == "" && len(s.Keywords) == 0 &&
		s.Canonical == "" && len(s.OpenGraph) == 0 && len(s.Twitter) == 0
}

// BlockType is the kind of a content block.
type BlockType string

const (
	BlockParagraph  BlockType = "paragraph"
	BlockList       BlockType = "list"
	BlockBlockquote BlockType = "blockquote"
	BlockImage      BlockType = "image"
	BlockFigure     BlockType = "figure"
)

// ContentBlock is one piece of page content. Which fields are set depends
// on Type.
type ContentBlock struct {
	Type     BlockType `json:"type"`
	Text     string    `json:"text,omitempty"`
	Items    []string  `json:"items,omitempty"`
	ListType string    `json:"listType,omitempty"` // "ul" or "ol"
	Src      string    `json:"src,omitempty"`
	Alt      string    `json:"alt,omitempty"`
	Caption  string    `json:"caption,omitempty"`
}

// Ordered reports whether a list block is numbered.
func (b ContentBlock) Ordered() bool { return b.ListType == "ol" }

// Heading is a section heading.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Section is a headed group of content blocks.
type Section struct {
	ID        string         `json:"id"`
	ClassName string         `json:"className"`
	Heading   *Heading       `json:"heading,omitempty"`
	Content   []ContentBlock `json:"content"`
	Images    []string       `json:"images"`
}

// PageContent is the body of a page.
type PageContent struct {
	Sections []Section     `json:"sections"`
	Images   map[string]any `json:"images"`
}

// Page is one scraped page, blog post or product.
type Page struct {
	URL        string      `json:"url"`
	Slug       string      `json:"slug"`
	Type       string      `json:"type"`
	ScrapedAt  string      `json:"scrapedAt"`
	SEO        SEO         `json:"seo"`
	Content    PageContent `json:"content"`
	Components any         `json:"components,omitempty"`
}

// Title returns the SEO title, falling back to the first section heading
// and then the slug.
func (p Page) Title() string {
	if p.SEO.Title != "" {
		return p.SEO.Title
	}
	for _, s := range p.Content.Sections {
		if s.Heading != nil && s.Heading.Text != "" {
			return s.Heading.Text
		}
	}
	return p.Slug
}

// Blog groups blog posts with their taxonomy.
type Blog struct {
	Posts      map[string]Page `json:"posts"`
	Categories []string        `json:"categories"`
	Tags       []string        `json:"tags"`
}

// SiteData is the whole content document.
type SiteData struct {
	Metadata   Metadata        `json:"metadata"`
	Navigation Navigation      `json:"navigation"`
	Pages      map[string]Page `json:"pages"`
	Blog       Blog            `json:"blog"`
	Products   map[string]Page `json:"products"`
	SEO        map[string]SEO  `json:"seo"`
}
