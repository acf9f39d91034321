package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const richDoc = `{
  "metadata": {"siteName": "Nothing Better Health", "baseUrl": "https://nothingbetterhealth.com", "scrapedAt": "2025-01-01", "version": "1"},
  "navigation": {
    "mainMenu": [{"text": "Home", "href": "/", "isExternal": false}],
    "footerMenu": [{"text": "Privacy Policy", "href": "/privacy", "isExternal": false}],
    "socialLinks": [{"platform": "instagram", "url": "https://instagram.com/nbh", "icon": "instagram"}]
  },
  "pages": {
    "home": {
      "url": "https://nothingbetterhealth.com/",
      "slug": "home",
      "type": "page",
      "seo": {"title": "Telehealth Psychiatry", "description": "Care from home", "keywords": ["adhd", "anxiety"], "canonical": "https://nothingbetterhealth.com/"},
      "content": {"sections": [{"id": "hero", "className": "hero", "heading": {"level": 1, "text": "Welcome"}, "content": [{"type": "paragraph", "text": "Hello."}], "images": []}], "images": {}}
    },
    "about": {
      "slug": "about",
      "seo": {"title": "About"}
    }
  },
  "blog": {
    "posts": {
      "sleep": {"slug": "sleep", "type": "post", "seo": {"title": "Sleep and Mood"}, "content": {"sections": []}},
      "adhd": {"slug": "adhd", "type": "post", "seo": {"title": "ADHD in Adults"}, "content": {"sections": []}}
    },
    "categories": ["wellness"],
    "tags": ["sleep"]
  },
  "products": {},
  "seo": {
    "providers": {"title": "Our Providers", "description": "Meet the team"},
    "home": {"title": "Home Override"}
  }
}`

const legacyDoc = `{
  "metadata": {"siteName": "NBH"},
  "pages": {
    "contact": {
      "title": "Contact Us",
      "content": "Call us any time.\n\nWe reply within a day.",
      "images": ["/images/office.jpg"],
      "metadata": {"description": "Reach the team"}
    }
  }
}`

func TestEmptyStore(t *testing.T) {
	s := Empty()
	assert.Empty(t, s.AllPages())
	assert.Empty(t, s.BlogPosts())
	assert.Empty(t, s.Products())
	assert.Empty(t, s.Navigation().MainMenu)
	_, ok := s.PageBySlug("home")
	assert.False(t, ok)
	_, ok = s.SEOFor("home")
	assert.False(t, ok)
}

func TestParseRich(t *testing.T) {
	s, err := Parse([]byte(richDoc))
	require.NoError(t, err)

	assert.Equal(t, "Nothing Better Health", s.SiteData().Metadata.SiteName)

	home, ok := s.PageBySlug("home")
	require.True(t, ok)
	require.Len(t, home.Content.Sections, 1)
	assert.Equal(t, "Welcome", home.Content.Sections[0].Heading.Text)
	assert.Equal(t, BlockParagraph, home.Content.Sections[0].Content[0].Type)

	// A page with SEO but no body is still the full schema.
	about, ok := s.PageBySlug("about")
	require.True(t, ok)
	assert.Equal(t, "About", about.SEO.Title)

	pages := s.AllPages()
	require.Len(t, pages, 2)
	assert.Equal(t, "about", pages[0].Slug)
	assert.Equal(t, "home", pages[1].Slug)

	posts := s.BlogPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, "adhd", posts[0].Slug)
	post, ok := s.BlogPost("sleep")
	require.True(t, ok)
	assert.Equal(t, "Sleep and Mood", post.Title())

	assert.Equal(t, "/privacy", s.Navigation().FooterMenu[0].Href)
	assert.Empty(t, s.Products())
}

func TestSEOFor(t *testing.T) {
	s, err := Parse([]byte(richDoc))
	require.NoError(t, err)

	seo, ok := s.SEOFor("home")
	require.True(t, ok)
	assert.Equal(t, "Home Override", seo.Title)

	seo, ok = s.SEOFor("providers")
	require.True(t, ok)
	assert.Equal(t, "Meet the team", seo.Description)

	seo, ok = s.SEOFor("about")
	require.True(t, ok)
	assert.Equal(t, "About", seo.Title)

	_, ok = s.SEOFor("faq")
	assert.False(t, ok)
}

func TestParseLegacyShape(t *testing.T) {
	s, err := Parse([]byte(legacyDoc))
	require.NoError(t, err)

	p, ok := s.PageBySlug("contact")
	require.True(t, ok)
	assert.Equal(t, "contact", p.Slug)
	assert.Equal(t, "Contact Us", p.SEO.Title)
	assert.Equal(t, "Reach the team", p.SEO.Description)
	require.Len(t, p.Content.Sections, 1)

	sec := p.Content.Sections[0]
	assert.Equal(t, "Contact Us", sec.Heading.Text)
	require.Len(t, sec.Content, 2)
	assert.Equal(t, "Call us any time.", sec.Content[0].Text)
	assert.Equal(t, "We reply within a day.", sec.Content[1].Text)
	assert.Equal(t, []string{"/images/office.jpg"}, sec.Images)
	assert.Equal(t, "/images/office.jpg", p.Content.Images["image_0"])
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"pages": [}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"pages": {"x": {"content": {"sections": "nope"}}}}`))
	assert.Error(t, err)
}

func TestParseKeysPagesByMapKey(t *testing.T) {
	s, err := Parse([]byte(`{"blog": {"posts": {"coping-tips": {"slug": "coping-with-anxiety", "seo": {"title": "Coping"}}}}}`))
	require.NoError(t, err)

	post, ok := s.BlogPost("coping-tips")
	require.True(t, ok)
	assert.Equal(t, "coping-tips", post.Slug)

	posts := s.BlogPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, "coping-tips", posts[0].Slug)

	_, ok = s.BlogPost("coping-with-anxiety")
	assert.False(t, ok)
}

func TestParseRejectsUnsafePostSlugs(t *testing.T) {
	for _, slug := range []string{"..", "../escape", "a/b", `a\\b`, "x..y"} {
		doc := `{"blog": {"posts": {"` + slug + `": {"seo": {"title": "T"}}}}}`
		_, err := Parse([]byte(doc))
		assert.Error(t, err, "slug %q", slug)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("coping-tips"))
	assert.True(t, ValidSlug("adhd_2025"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("."))
	assert.False(t, ValidSlug("../etc"))
	assert.False(t, ValidSlug("a/b"))
	assert.False(t, ValidSlug(`a\b`))
}

func TestPageTitleFallbacks(t *testing.T) {
	assert.Equal(t, "SEO", Page{Slug: "s", SEO: SEO{Title: "SEO"}}.Title())
	assert.Equal(t, "Heading", Page{Slug: "s", Content: PageContent{Sections: []Section{{}, {Heading: &Heading{Text: "Heading"}}}}}.Title())
	assert.Equal(t, "s", Page{Slug: "s"}.Title())
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, s.AllPages())

	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(legacyDoc), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, s.AllPages(), 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestContentBlockOrdered(t *testing.T) {
	assert.True(t, ContentBlock{Type: BlockList, ListType: "ol"}.Ordered())
	assert.False(t, ContentBlock{Type: BlockList, ListType: "ul"}.Ordered())
}
