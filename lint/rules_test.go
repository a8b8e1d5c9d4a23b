package lint

import (
	"testing"
	"testing/fstest"

	"github.com/patternbook/patternbook/catalog"
)

// goodArticle has every canonical section in order and code in the example.
const goodArticle = `+++
title = "Sample"
category = "design-pattern"
+++

# Sample

## Historical Context

a

## Definition

b

## When to Use

c

## Benefits

d

## Drawbacks

e

## Worked Example

` + "```go\npackage sample\n```" + `

## When to Avoid

f

## Alternatives

g

## Conclusion

h
`

func load(t *testing.T, fsys fstest.MapFS) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

// byRule indexes findings for assertions.
func byRule(findings []Finding) map[string][]Finding {
	m := make(map[string][]Finding)
	for _, f := range findings {
		m[f.Rule] = append(m[f.Rule], f)
	}
	return m
}

func TestCleanTree(t *testing.T) {
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Sample](./docs/design-patterns/sample/index.md) — fine
`)},
		"docs/design-patterns/sample/index.md": {Data: []byte(goodArticle)},
	})
	findings := Run(cat, Options{DesignPatterns: 1, Architectures: 0})
	if len(findings) != 0 {
		t.Errorf("expected no findings, got %v", findings)
	}
}

func TestBrokenIndexLink(t *testing.T) {
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Sample](./docs/design-patterns/sample/index.md) — fine
- [Ghost](./docs/design-patterns/ghost/index.md) — missing
`)},
		"docs/design-patterns/sample/index.md": {Data: []byte(goodArticle)},
	})
	m := byRule(Run(cat, Options{DesignPatterns: 2, Architectures: 0}))
	if len(m["index-link"]) != 1 {
		t.Errorf("expected 1 index-link finding, got %v", m["index-link"])
	}
	if m["index-link"][0].Severity != Error {
		t.Errorf("index-link severity = %v", m["index-link"][0].Severity)
	}
}

func TestOrphanAndDuplicate(t *testing.T) {
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Sample](./docs/design-patterns/sample/index.md) — linked
- [Sample again](./docs/design-patterns/sample/index.md) — linked twice
`)},
		"docs/design-patterns/sample/index.md": {Data: []byte(goodArticle)},
		"docs/design-patterns/orphan/index.md": {Data: []byte(goodArticle)},
	})
	m := byRule(Run(cat, Options{DesignPatterns: 2, Architectures: 0}))
	if len(m["orphan"]) != 1 {
		t.Errorf("expected 1 orphan finding, got %v", m["orphan"])
	}
	if len(m["duplicate-link"]) != 1 {
		t.Errorf("expected 1 duplicate-link finding, got %v", m["duplicate-link"])
	}
}

func TestSectionOrder(t *testing.T) {
	outOfOrder := `+++
title = "Backwards"
category = "design-pattern"
+++

# Backwards

## Definition

b

## Historical Context

a

## Worked Example

` + "```go\npackage x\n```" + `
`
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Backwards](./docs/design-patterns/backwards/index.md) — scrambled
`)},
		"docs/design-patterns/backwards/index.md": {Data: []byte(outOfOrder)},
	})
	m := byRule(Run(cat, Options{DesignPatterns: 1, Architectures: 0}))
	if len(m["section-order"]) != 1 {
		t.Errorf("expected 1 section-order finding, got %v", m["section-order"])
	}
	if len(m["section-missing"]) != 1 {
		t.Errorf("expected 1 section-missing warning, got %v", m["section-missing"])
	}
	if m["section-missing"][0].Severity != Warning {
		t.Errorf("section-missing severity = %v", m["section-missing"][0].Severity)
	}
}

func TestWorkedExampleWithoutCode(t *testing.T) {
	noCode := `+++
title = "Talky"
category = "design-pattern"
+++

# Talky

## Worked Example

All prose, no code.
`
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Talky](./docs/design-patterns/talky/index.md) — all words
`)},
		"docs/design-patterns/talky/index.md": {Data: []byte(noCode)},
	})
	m := byRule(Run(cat, Options{DesignPatterns: 1, Architectures: 0}))
	if len(m["worked-example"]) != 1 {
		t.Errorf("expected 1 worked-example finding, got %v", m["worked-example"])
	}
}

func TestEntryCounts(t *testing.T) {
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Sample](./docs/design-patterns/sample/index.md) — only one
`)},
		"docs/design-patterns/sample/index.md": {Data: []byte(goodArticle)},
	})
	m := byRule(Run(cat, DefaultOptions()))
	// 15 patterns expected but 1 found, 6 architectures expected but 0
	// found, and the total disagrees: three findings.
	if len(m["entry-count"]) != 3 {
		t.Errorf("expected 3 entry-count findings, got %v", m["entry-count"])
	}
}

func TestDuplicateName(t *testing.T) {
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Sample](./docs/design-patterns/sample/index.md) — one
- [Sample](./docs/design-patterns/other/index.md) — same name
`)},
		"docs/design-patterns/sample/index.md": {Data: []byte(goodArticle)},
		"docs/design-patterns/other/index.md":  {Data: []byte(goodArticle)},
	})
	m := byRule(Run(cat, Options{DesignPatterns: 2, Architectures: 0}))
	if len(m["duplicate-name"]) != 1 {
		t.Errorf("expected 1 duplicate-name finding, got %v", m["duplicate-name"])
	}
}

func TestCategoryMismatch(t *testing.T) {
	misfiled := `+++
title = "Misfiled"
category = "architecture"
+++

# Misfiled

## Worked Example

` + "```go\npackage x\n```" + `
`
	cat := load(t, fstest.MapFS{
		"readme.md": {Data: []byte(`# Index

## Design Patterns

- [Misfiled](./docs/design-patterns/misfiled/index.md) — wrong shelf
`)},
		"docs/design-patterns/misfiled/index.md": {Data: []byte(misfiled)},
	})
	m := byRule(Run(cat, Options{DesignPatterns: 1, Architectures: 0}))
	if len(m["category"]) != 1 {
		t.Errorf("expected 1 category warning, got %v", m["category"])
	}
	if m["category"][0].Severity != Warning {
		t.Errorf("category severity = %v", m["category"][0].Severity)
	}
}

func TestErrorCount(t *testing.T) {
	findings := []Finding{
		{Severity: Error},
		{Severity: Warning},
		{Severity: Error},
	}
	if got := ErrorCount(findings); got != 2 {
		t.Errorf("ErrorCount = %d", got)
	}
}

func TestFindingString(t *testing.T) {
	f := Finding{Rule: "index-link", Severity: Error, Path: "docs/x/index.md", Message: "missing"}
	want := "error: docs/x/index.md: missing [index-link]"
	if f.String() != want {
		t.Errorf("String() = %q, want %q", f.String(), want)
	}
}
