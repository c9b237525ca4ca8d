package main

import (
	"bytes"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/takaryo1010/giongo/internal/onomatopoeia"
)

// markdownEscaper escapes the characters that would otherwise start inline
// markup inside a sense or a heading.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
	`!`, `\!`,
	`&`, `\&`,
)

// heading is a level 2 heading found in the rendered document.
type heading struct {
	ID   string
	Text string
}

// buildMarkdown lays the dictionary out as one section per phonetic form.
func buildMarkdown(dict *onomatopoeia.Dictionary, title string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", markdownEscaper.Replace(title))
	for _, key := range dict.Keys() {
		fmt.Fprintf(&b, "## %s\n\n", markdownEscaper.Replace(key))
		for _, sense := range dict.Senses(key) {
			b.WriteString("- ")
			b.WriteString(markdownEscaper.Replace(sense.English))
			if sense.Details != nil {
				b.WriteString(" — *")
				b.WriteString(markdownEscaper.Replace(*sense.Details))
				b.WriteString("*")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// collectHeadings walks the document and returns its level 2 headings.
func collectHeadings(doc ast.Node, source []byte, logger *slog.Logger) ([]heading, error) {
	var headings []heading
	walker := func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			h := n.(*ast.Heading)
			if h.Level != 2 {
				return ast.WalkSkipChildren, nil
			}
			var id string
			if v, ok := h.AttributeString("id"); ok {
				if b, ok := v.([]byte); ok {
					id = string(b)
				}
			}
			headings = append(headings, heading{ID: id, Text: inlineText(h, source)})
			logger.Debug("heading found", slog.String("id", id), slog.Int("index", len(headings)))
			return ast.WalkSkipChildren, nil
		case ast.KindList:
			// Sense lists hold no headings.
			return ast.WalkSkipChildren, nil
		default:
			return ast.WalkContinue, nil
		}
	}

	if err := ast.Walk(doc, walker); err != nil {
		return nil, fmt.Errorf("error during AST traversal: %w", err)
	}
	return headings, nil
}

// inlineText concatenates the text and string children of n.
func inlineText(n ast.Node, source []byte) string {
	var b bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return b.String()
}

// RenderPreview renders the dictionary as a standalone HTML page with a
// table of contents.
func RenderPreview(dict *onomatopoeia.Dictionary, title string, logger *slog.Logger) ([]byte, error) {
	source := buildMarkdown(dict, title)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	doc := md.Parser().Parse(text.NewReader(source))

	headings, err := collectHeadings(doc, source, logger)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := md.Renderer().Render(&body, source, doc); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(title))
	page.WriteString("</head>\n<body>\n<nav>\n<ul>\n")
	for _, h := range headings {
		fmt.Fprintf(&page, "<li><a href=\"#%s\">%s</a></li>\n", html.EscapeString(h.ID), html.EscapeString(h.Text))
	}
	page.WriteString("</ul>\n</nav>\n<main>\n")
	page.Write(body.Bytes())
	page.WriteString("</main>\n</body>\n</html>\n")

	return page.Bytes(), nil
}
