// Package content loads the optional site content document: scraped pages,
// blog posts, products, menus and per-page SEO metadata.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Store gives read-only access to a content document. The zero value and
// Empty() hold no content; every accessor then returns empty results.
type Store struct {
	data SiteData
}

// Empty returns a store with no content.
func Empty() *Store {
	return &Store{}
}

// Load reads a content document from a JSON file. An empty path returns
// an empty store.
func Load(path string) (*Store, error) {
	if path == "" {
		return Empty(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a content document. Pages may use the full schema or the
// legacy {title, content, images} shape; legacy pages are normalized.
func Parse(raw []byte) (*Store, error) {
	var doc struct {
		Metadata   Metadata                   `json:"metadata"`
		Navigation Navigation                 `json:"navigation"`
		Pages      map[string]json.RawMessage `json:"pages"`
		Blog       struct {
			Posts      map[string]json.RawMessage `json:"posts"`
			Categories []string                   `json:"categories"`
			Tags       []string                   `json:"tags"`
		} `json:"blog"`
		Products map[string]json.RawMessage `json:"products"`
		SEO      map[string]SEO             `json:"seo"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	pages, err := decodePages(doc.Pages)
	if err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}
	posts, err := decodePages(doc.Blog.Posts)
	if err != nil {
		return nil, fmt.Errorf("blog posts: %w", err)
	}
	// Post slugs become URL path segments and export directories.
	for slug := range posts {
		if !ValidSlug(slug) {
			return nil, fmt.Errorf("blog posts: invalid slug %q", slug)
		}
	}
	products, err := decodePages(doc.Products)
	if err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}

	return &Store{data: SiteData{
		Metadata:   doc.Metadata,
		Navigation: doc.Navigation,
		Pages:      pages,
		Blog:       Blog{Posts: posts, Categories: doc.Blog.Categories, Tags: doc.Blog.Tags},
		Products:   products,
		SEO:        doc.SEO,
	}}, nil
}

// ValidSlug reports whether slug can be used as a single path segment.
func ValidSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, "/\\?#") && !strings.Contains(slug, "..")
}

// decodePages keys every page by its map key; a page's own "slug" field is
// replaced so lookups and generated links agree.
func decodePages(raw map[string]json.RawMessage) (map[string]Page, error) {
	pages := make(map[string]Page, len(raw))
	for slug, msg := range raw {
		p, err := decodePage(slug, msg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", slug, err)
		}
		pages[slug] = p
	}
	return pages, nil
}

// legacyPage is the loose page shape older exports produced.
type legacyPage struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Images   []string       `json:"images"`
	Metadata map[string]any `json:"metadata"`
}

func decodePage(slug string, msg json.RawMessage) (Page, error) {
	var probe struct {
		Content json.RawMessage `json:"content"`
		SEO     json.RawMessage `json:"seo"`
		Slug    string          `json:"slug"`
	}
	if err := json.Unmarshal(msg, &probe); err != nil {
		return Page{}, err
	}

	c := bytes.TrimSpace(probe.Content)
	rich := len(c) > 0 && c[0] == '{'
	if len(c) == 0 {
		rich = len(probe.SEO) > 0 || probe.Slug != ""
	}
	if rich {
		var p Page
		if err := json.Unmarshal(msg, &p); err != nil {
			return Page{}, err
		}
		p.Slug = slug
		return p, nil
	}

	var lp legacyPage
	if err := json.Unmarshal(msg, &lp); err != nil {
		return Page{}, err
	}
	return normalizeLegacy(slug, lp), nil
}

// normalizeLegacy maps title to the SEO title and splits content on blank
// lines into paragraph blocks of a single section.
func normalizeLegacy(slug string, lp legacyPage) Page {
	p := Page{
		Slug: slug,
		Type: "page",
		SEO:  SEO{Title: lp.Title},
	}
	if d, ok := lp.Metadata["description"].(string); ok {
		p.SEO.Description = d
	}

	var blocks []ContentBlock
	for _, para := range strings.Split(strings.ReplaceAll(lp.Content, "\r\n", "\n"), "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			blocks = append(blocks, ContentBlock{Type: BlockParagraph, Text: para})
		}
	}
	sec := Section{ID: slug, Content: blocks, Images: lp.Images}
	if lp.Title != "" {
		sec.Heading = &Heading{Level: 1, Text: lp.Title}
	}
	p.Content.Sections = []Section{sec}

	if len(lp.Images) > 0 {
		p.Content.Images = make(map[string]any, len(lp.Images))
		for i, src := range lp.Images {
			p.Content.Images[fmt.Sprintf("image_%d", i)] = src
		}
	}
	return p
}

// SiteData returns the whole document.
func (s *Store) SiteData() SiteData {
	return s.data
}

// PageBySlug returns the page with the given slug.
func (s *Store) PageBySlug(slug string) (Page, bool) {
	p, ok := s.data.Pages[slug]
	return p, ok
}

// AllPages returns every page ordered by slug.
func (s *Store) AllPages() []Page {
	return sortedPages(s.data.Pages)
}

// BlogPosts returns every blog post ordered by slug.
func (s *Store) BlogPosts() []Page {
	return sortedPages(s.data.Blog.Posts)
}

// BlogPost returns the post with the given slug.
func (s *Store) BlogPost(slug string) (Page, bool) {
	p, ok := s.data.Blog.Posts[slug]
	return p, ok
}

// Products returns every product page ordered by slug.
func (s *Store) Products() []Page {
	return sortedPages(s.data.Products)
}

// Navigation returns the menus.
func (s *Store) Navigation() Navigation {
	return s.data.Navigation
}

// SEOFor returns SEO metadata for a slug. Entries in the top-level seo map
// win over the page's own metadata.
func (s *Store) SEOFor(slug string) (SEO, bool) {
	if seo, ok := s.data.SEO[slug]; ok && !seo.IsZero() {
		return seo, true
	}
	if p, ok := s.data.Pages[slug]; ok && !p.SEO.IsZero() {
		return p.SEO, true
	}
	return SEO{}, false
}

func sortedPages(m map[string]Page) []Page {
	pages := make([]Page, 0, len(m))
	for _, p := range m {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages
}
