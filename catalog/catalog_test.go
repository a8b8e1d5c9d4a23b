package catalog

import (
	"testing"
	"testing/fstest"
)

func miniTree() fstest.MapFS {
	return fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Factory Method](./docs/design-patterns/factory-method/index.md) — one
- [Decorator](./docs/design-patterns/decorator/index.md) — two

## Architectures

- [Hexagonal Architecture](./docs/architectures/hexagonal/index.md) — three
`)},
		"docs/design-patterns/factory-method/index.md": {Data: []byte(sampleArticle)},
		"docs/design-patterns/decorator/index.md":      {Data: []byte("# Decorator\n\n## Definition\n\nwords\n")},
		"docs/architectures/hexagonal/index.md":        {Data: []byte("# Hexagonal\n\n## Definition\n\nwords\n")},
	}
}

func TestLoad(t *testing.T) {
	cat, err := Load(miniTree())
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(cat.Entries))
	}
	if len(cat.Articles) != 3 {
		t.Errorf("expected 3 articles, got %d", len(cat.Articles))
	}
	if a := cat.Article("decorator"); a == nil || a.Title != "Decorator" {
		t.Errorf("Article(decorator) = %+v", a)
	}
	if a := cat.Article("missing"); a != nil {
		t.Errorf("Article(missing) should be nil, got %+v", a)
	}
	if got := cat.ByCategory(CategoryDesignPattern); len(got) != 2 {
		t.Errorf("ByCategory(design-pattern) = %d articles", len(got))
	}
	// deterministic order by path
	if cat.Articles[0].Path > cat.Articles[1].Path || cat.Articles[1].Path > cat.Articles[2].Path {
		t.Errorf("articles not sorted by path: %v, %v, %v",
			cat.Articles[0].Path, cat.Articles[1].Path, cat.Articles[2].Path)
	}
}

func TestLoadMissingIndex(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/design-patterns/x/index.md": {Data: []byte("# X\n")},
	}
	_, err := Load(fsys)
	if err == nil {
		t.Error("expected an error when the index is missing")
	}
}

func TestLoadMissingDocs(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md": {Data: []byte("# Index\n")},
	}
	_, err := Load(fsys)
	if err == nil {
		t.Error("expected an error when the docs folder is missing")
	}
}
