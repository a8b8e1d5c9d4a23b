package catalog

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// sectionLevel is the heading level that starts a named article section.
const sectionLevel = 2

// parseBody parses a Markdown body into an AST using the same extensions the
// site renderer uses, so structure extraction and rendering never disagree.
func parseBody(body []byte) *blackfriday.Node {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions | blackfriday.Footnotes))
	return md.Parse(body)
}

// nodeText collects the literal text beneath a node.
func nodeText(n *blackfriday.Node) string {
	var buf bytes.Buffer
	n.Walk(func(c *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && (c.Type == blackfriday.Text || c.Type == blackfriday.Code) {
			buf.Write(c.Literal)
		}
		return blackfriday.GoToNext
	})
	return strings.TrimSpace(buf.String())
}

// ParseArticle reads and parses one article file. The slug is the name of
// the folder holding the file, and the category falls back to the docs
// subfolder when the front matter does not name one.
func ParseArticle(fsys fs.FS, name string) (*Article, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("ParseArticle: %w", err)
	}
	front, body, err := ParseFrontMatter(b)
	if err != nil {
		return nil, fmt.Errorf("ParseArticle %q: %w", name, err)
	}

	a := Article{
		Slug:        path.Base(path.Dir(name)),
		Path:        name,
		Title:       front.Title,
		Emoji:       front.Emoji,
		Category:    front.Category,
		Description: front.Description,
		Date:        front.Date,
		FrontMatter: front,
	}
	if a.Category == "" {
		a.Category = categoryFromPath(name)
	}

	var current string
	parseBody(body).Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch n.Type {
		case blackfriday.Heading:
			text := nodeText(n)
			if n.HeadingData.Level == 1 && a.Title == "" {
				a.Title = strings.TrimSpace(strings.TrimPrefix(text, a.Emoji))
			}
			if n.HeadingData.Level == sectionLevel {
				a.Sections = append(a.Sections, Section{Title: text, Level: n.HeadingData.Level})
				current = text
			}
			return blackfriday.SkipChildren
		case blackfriday.CodeBlock:
			a.CodeExamples = append(a.CodeExamples, CodeExample{
				Section:  current,
				Language: strings.TrimSpace(string(n.CodeBlockData.Info)),
				Code:     string(n.Literal),
			})
		}
		return blackfriday.GoToNext
	})

	return &a, nil
}

// categoryFromPath derives the category from the docs subfolder of an
// article path like "docs/design-patterns/factory-method/index.md".
func categoryFromPath(name string) Category {
	parts := strings.Split(path.Clean(name), "/")
	if len(parts) >= 2 && parts[0] == "docs" {
		return CategoryForDir(parts[1])
	}
	return ""
}
