package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/nothingbetterhealth/nbh-site/internal/content"
)

// newMarkdown returns the goldmark pipeline used for catalog copy and
// content-schema bodies. Raw HTML in the source is not passed through.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

var md = newMarkdown()

// Markdown converts src to HTML. Conversion failures fall back to the
// escaped source so a bad bio never breaks a page.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

// RenderSections turns content-schema sections into markdown and then HTML.
// Paragraph text may itself carry markdown inline formatting.
func RenderSections(sections []content.Section) template.HTML {
	var b strings.Builder
	for _, s := range sections {
		if s.Heading != nil && s.Heading.Text != "" {
			level := s.Heading.Level
			if level < 2 || level > 6 {
				level = 2
			}
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", level), s.Heading.Text)
		}
		for _, block := range s.Content {
			writeBlock(&b, block)
		}
		for _, img := range s.Images {
			fmt.Fprintf(&b, "![](%s)\n\n", escapeMarkdownURL(img))
		}
	}
	return Markdown(b.String())
}

func writeBlock(b *strings.Builder, block content.ContentBlock) {
	switch block.Type {
	case content.BlockParagraph:
		b.WriteString(block.Text + "\n\n")
	case content.BlockList:
		for i, item := range block.Items {
			if block.Ordered() {
				fmt.Fprintf(b, "%d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(b, "- %s\n", item)
			}
		}
		b.WriteString("\n")
	case content.BlockBlockquote:
		for _, line := range strings.Split(block.Text, "\n") {
			b.WriteString("> " + line + "\n")
		}
		b.WriteString("\n")
	case content.BlockImage, content.BlockFigure:
		fmt.Fprintf(b, "![%s](%s)\n\n", block.Alt, escapeMarkdownURL(block.Src))
		if block.Caption != "" {
			b.WriteString("*" + block.Caption + "*\n\n")
		}
	}
}

// escapeMarkdownURL wraps URLs containing spaces in angle brackets so
// goldmark treats them as a single destination.
func escapeMarkdownURL(u string) string {
	if strings.ContainsAny(u, " ()") {
		return "<" + u + ">"
	}
	return u
}
