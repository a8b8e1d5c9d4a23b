/*
catalog models a tree of pattern and architecture articles as data. Every
article is a Markdown file with optional front matter, a fixed outline of
sections, and fenced code examples inside its Worked Example section. The
top-level readme.md is the index: one row per article, grouped by category.

The package reads any fs.FS laid out as

	readme.md
	docs/design-patterns/<slug>/index.md
	docs/architectures/<slug>/index.md

and produces a Catalog joining the index rows with the parsed articles, which
is what the lint rules and the site templates operate on.
*/
package catalog

import "time"

// Category classifies an article for index grouping.
type Category string

const (
	CategoryDesignPattern Category = "design-pattern"
	CategoryArchitecture  Category = "architecture"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	return c == CategoryDesignPattern || c == CategoryArchitecture
}

// String returns a display name for the category.
func (c Category) String() string {
	switch c {
	case CategoryDesignPattern:
		return "Design Pattern"
	case CategoryArchitecture:
		return "Architecture"
	}
	return string(c)
}

// categoryDirs maps docs subfolders to their category.
var categoryDirs = map[string]Category{
	"design-patterns": CategoryDesignPattern,
	"architectures":   CategoryArchitecture,
}

// CategoryForDir returns the category for a docs subfolder name,
// or "" when the folder is not a known grouping.
func CategoryForDir(dir string) Category {
	return categoryDirs[dir]
}

// Section is one named prose block of an article, in document order.
type Section struct {
	Title string // heading text
	Level int    // heading level (sections are level 2)
}

// CodeExample is a fenced code block from an article body.
type CodeExample struct {
	Section  string // title of the section the block appears under
	Language string // info string of the fence, e.g. "go"
	Code     string
}

// Article is one parsed pattern or architecture writeup.
type Article struct {
	Slug         string    // folder name, e.g. "factory-method"
	Path         string    // path of the Markdown file within the FS
	Title        string    // from front matter, falling back to the first heading
	Emoji        string    // display emoji, may be empty
	Category     Category  // from front matter, falling back to the folder
	Description  string    // one-line summary from front matter
	Date         time.Time // publish date
	Sections     []Section
	CodeExamples []CodeExample
	FrontMatter  FrontMatter // raw front matter as parsed
}

// Section returns the article's section with the given title, or nil.
func (a *Article) Section(title string) *Section {
	for i := range a.Sections {
		if a.Sections[i].Title == title {
			return &a.Sections[i]
		}
	}
	return nil
}

// ExamplesIn returns the code examples appearing under the named section.
func (a *Article) ExamplesIn(section string) []CodeExample {
	var out []CodeExample
	for _, ex := range a.CodeExamples {
		if ex.Section == section {
			out = append(out, ex)
		}
	}
	return out
}

// IndexEntry is one row of the readme.md catalog.
type IndexEntry struct {
	Name        string   // link text, e.g. "Factory Method"
	Link        string   // link destination as written, e.g. "./docs/design-patterns/factory-method/index.md"
	Target      string   // cleaned destination relative to the FS root
	Description string   // trailing text of the row
	Category    Category // from the grouping heading above the row
}

// Catalog joins the index with the parsed articles.
type Catalog struct {
	Entries  []IndexEntry
	Articles []Article
}

// Article returns the article with the given slug, or nil.
func (c *Catalog) Article(slug string) *Article {
	for i := range c.Articles {
		if c.Articles[i].Slug == slug {
			return &c.Articles[i]
		}
	}
	return nil
}

// ByCategory returns the articles in the given category, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Article {
	var out []Article
	for _, a := range c.Articles {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}
