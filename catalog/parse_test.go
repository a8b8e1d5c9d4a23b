package catalog

import (
	"strings"
	"testing"
	"testing/fstest"
)

const sampleArticle = `+++
title = "Factory Method"
emoji = "🏭"
category = "design-pattern"
description = "Let subclasses decide."
+++

# 🏭 Factory Method

## Historical Context

Some history.

## Definition

Some definition.

## Worked Example

Some prose.

` + "```go\ntype Transport interface{}\n```" + `

More prose.

` + "```go\nfunc Plan() {}\n```" + `

## Conclusion

Wrap up.
`

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/design-patterns/factory-method/index.md": {Data: []byte(sampleArticle)},
	}
}

func TestParseArticle(t *testing.T) {
	a, err := ParseArticle(sampleFS(), "docs/design-patterns/factory-method/index.md")
	if err != nil {
		t.Fatal(err)
	}
	if a.Slug != "factory-method" {
		t.Errorf("Slug = %q", a.Slug)
	}
	if a.Title != "Factory Method" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.Category != CategoryDesignPattern {
		t.Errorf("Category = %q", a.Category)
	}

	want := []string{"Historical Context", "Definition", "Worked Example", "Conclusion"}
	if len(a.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d: %#v", len(want), len(a.Sections), a.Sections)
	}
	for i, s := range a.Sections {
		if s.Title != want[i] {
			t.Errorf("section %d = %q, want %q", i, s.Title, want[i])
		}
	}

	if len(a.CodeExamples) != 2 {
		t.Fatalf("expected 2 code examples, got %d", len(a.CodeExamples))
	}
	for _, ex := range a.CodeExamples {
		if ex.Section != "Worked Example" {
			t.Errorf("code example attributed to %q", ex.Section)
		}
		if ex.Language != "go" {
			t.Errorf("language = %q", ex.Language)
		}
	}
	if !strings.Contains(a.CodeExamples[0].Code, "Transport") {
		t.Errorf("first code example = %q", a.CodeExamples[0].Code)
	}
	if got := a.ExamplesIn("Worked Example"); len(got) != 2 {
		t.Errorf("ExamplesIn = %d", len(got))
	}
	if a.Section("Definition") == nil {
		t.Error("Section(Definition) not found")
	}
	if a.Section("Nope") != nil {
		t.Error("Section(Nope) should be nil")
	}
}

func TestParseArticleCategoryFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/architectures/hexagonal/index.md": {Data: []byte("# Hexagonal\n\n## Definition\n\nwords\n")},
	}
	a, err := ParseArticle(fsys, "docs/architectures/hexagonal/index.md")
	if err != nil {
		t.Fatal(err)
	}
	if a.Category != CategoryArchitecture {
		t.Errorf("Category = %q, want fallback from folder", a.Category)
	}
	if a.Title != "Hexagonal" {
		t.Errorf("Title = %q, want fallback from heading", a.Title)
	}
}

func TestParseIndex(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md": {Data: []byte(`+++
title = "Catalog"
+++

# 📚 A Catalog of Patterns

Intro prose with an [external link](https://example.com/) to ignore.

## Design Patterns

- 🏭 [Factory Method](./docs/design-patterns/factory-method/index.md) — Let subclasses decide.
- ☕ [Decorator](./docs/design-patterns/decorator/index.md) — Wrap to extend.

## Architectures

- ⬡ [Hexagonal Architecture](./docs/architectures/hexagonal/index.md) — Ports and adapters.
`)},
	}
	entries, err := ParseIndex(fsys, "readme.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %#v", len(entries), entries)
	}
	first := entries[0]
	if first.Name != "Factory Method" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Target != "docs/design-patterns/factory-method/index.md" {
		t.Errorf("Target = %q", first.Target)
	}
	if first.Description != "Let subclasses decide." {
		t.Errorf("Description = %q", first.Description)
	}
	if first.Category != CategoryDesignPattern {
		t.Errorf("Category = %q", first.Category)
	}
	if entries[2].Category != CategoryArchitecture {
		t.Errorf("third entry category = %q", entries[2].Category)
	}
}
