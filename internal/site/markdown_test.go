package site

import (
	"strings"
	"testing"

	"github.com/nothingbetterhealth/nbh-site/internal/content"
)

func TestMarkdown(t *testing.T) {
	got := string(Markdown("Specializes in **trauma-informed** care.\n\n- PTSD\n- Anxiety"))

	if !strings.Contains(got, "<strong>trauma-informed</strong>") {
		t.Errorf("bold not rendered: %s", got)
	}
	if !strings.Contains(got, "<li>PTSD</li>") {
		t.Errorf("list not rendered: %s", got)
	}
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	got := string(Markdown("Hello <script>alert(1)</script>"))
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %s", got)
	}
}

func TestRenderSections(t *testing.T) {
	sections := []content.Section{
		{
			Heading: &content.Heading{Level: 1, Text: "About Us"},
			Content: []content.ContentBlock{
				{Type: content.BlockParagraph, Text: "We provide care."},
				{Type: content.BlockList, ListType: "ol", Items: []string{"Call", "Book"}},
				{Type: content.BlockBlockquote, Text: "Life-changing."},
				{Type: content.BlockImage, Src: "/images/general/Group Hug.jpg", Alt: "Hug", Caption: "Our team"},
			},
		},
	}
	got := string(RenderSections(sections))

	for _, want := range []string{
		`<h2 id="about-us">About Us</h2>`,
		"<p>We provide care.</p>",
		"<ol>",
		"<li>Book</li>",
		"<blockquote>",
		`alt="Hug"`,
		"<em>Our team</em>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSections missing %q in:\n%s", want, got)
		}
	}
}
