package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const (
	// IndexFile is the catalog page at the root of the documentation tree.
	IndexFile = "readme.md"
	// DocsDir is the folder holding one subfolder per article.
	DocsDir = "docs"
	// ArticleFile is the Markdown file inside each article folder.
	ArticleFile = "index.md"
)

// Load reads the index and every article beneath the docs folder.
// Articles are returned sorted by path so runs are deterministic.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := ParseIndex(fsys, IndexFile)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	cat := Catalog{Entries: entries}

	err = fs.WalkDir(fsys, DocsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != ArticleFile {
			return nil
		}
		a, err := ParseArticle(fsys, p)
		if err != nil {
			return err
		}
		cat.Articles = append(cat.Articles, *a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	sort.Slice(cat.Articles, func(i, j int) bool { return cat.Articles[i].Path < cat.Articles[j].Path })
	return &cat, nil
}

// ParseIndex reads the catalog rows out of the index page. A row is any
// link into the docs folder; its category comes from the closest grouping
// heading above it, and its description is the text trailing the link.
func ParseIndex(fsys fs.FS, name string) ([]IndexEntry, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("ParseIndex: %w", err)
	}
	_, body, err := ParseFrontMatter(b)
	if err != nil {
		return nil, fmt.Errorf("ParseIndex %q: %w", name, err)
	}

	var (
		entries  []IndexEntry
		category Category
	)
	parseBody(body).Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch n.Type {
		case blackfriday.Heading:
			// the page title is not a grouping heading
			if n.HeadingData.Level >= 2 {
				if c := categoryForHeading(nodeText(n)); c != "" {
					category = c
				}
			}
			return blackfriday.SkipChildren
		case blackfriday.Link:
			dest := string(n.LinkData.Destination)
			target := cleanLink(dest)
			if !strings.HasPrefix(target, DocsDir+"/") {
				return blackfriday.GoToNext
			}
			entries = append(entries, IndexEntry{
				Name:        nodeText(n),
				Link:        dest,
				Target:      target,
				Description: trailingText(n),
				Category:    category,
			})
			return blackfriday.SkipChildren
		}
		return blackfriday.GoToNext
	})
	return entries, nil
}

// categoryForHeading maps an index grouping heading to a category.
func categoryForHeading(text string) Category {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "pattern"):
		return CategoryDesignPattern
	case strings.Contains(t, "architecture"):
		return CategoryArchitecture
	}
	return ""
}

// cleanLink normalizes a relative link destination to a path from the FS root.
func cleanLink(dest string) string {
	dest = strings.TrimPrefix(dest, "./")
	return path.Clean(dest)
}

// trailingText collects the text following a link within its row, with the
// separator dash trimmed off.
func trailingText(n *blackfriday.Node) string {
	var parts []string
	for s := n.Next; s != nil; s = s.Next {
		parts = append(parts, nodeText(s))
	}
	text := strings.TrimSpace(strings.Join(parts, " "))
	for _, dash := range []string{"—", "–", "-"} {
		text = strings.TrimSpace(strings.TrimPrefix(text, dash))
	}
	return text
}
