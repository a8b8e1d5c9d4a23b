package lint

import (
	"fmt"
	"path"
	"strings"

	"github.com/patternbook/patternbook/catalog"
)

// canonicalSections is the section sequence every article follows.
var canonicalSections = []string{
	"Historical Context",
	"Definition",
	"When to Use",
	"Benefits",
	"Drawbacks",
	"Worked Example",
	"When to Avoid",
	"Alternatives",
	"Conclusion",
}

// workedExample is the section that must carry at least one code block.
const workedExample = "Worked Example"

// checkIndexTargets verifies that every index row resolves to a parsed
// article file.
func checkIndexTargets(cat *catalog.Catalog, _ Options) []Finding {
	files := make(map[string]bool, len(cat.Articles))
	for _, a := range cat.Articles {
		files[a.Path] = true
	}
	var findings []Finding
	for _, e := range cat.Entries {
		if !files[e.Target] {
			findings = append(findings, Finding{
				Rule:     "index-link",
				Severity: Error,
				Path:     e.Target,
				Message:  fmt.Sprintf("index row %q links to a file that does not exist", e.Name),
			})
		}
	}
	return findings
}

// checkArticleLinks verifies the round trip back from the files: every
// article is linked by exactly one index row.
func checkArticleLinks(cat *catalog.Catalog, _ Options) []Finding {
	refs := make(map[string]int, len(cat.Entries))
	for _, e := range cat.Entries {
		refs[e.Target]++
	}
	var findings []Finding
	for _, a := range cat.Articles {
		switch n := refs[a.Path]; {
		case n == 0:
			findings = append(findings, Finding{
				Rule:     "orphan",
				Severity: Error,
				Path:     a.Path,
				Message:  "article is not linked from the index",
			})
		case n > 1:
			findings = append(findings, Finding{
				Rule:     "duplicate-link",
				Severity: Error,
				Path:     a.Path,
				Message:  fmt.Sprintf("article is linked from the index %d times", n),
			})
		}
	}
	return findings
}

// checkCatalogShape verifies the fixed catalog size and that no name or
// slug appears twice.
func checkCatalogShape(cat *catalog.Catalog, opt Options) []Finding {
	var findings []Finding

	counts := make(map[catalog.Category]int)
	names := make(map[string]int)
	for _, e := range cat.Entries {
		counts[e.Category]++
		names[e.Name]++
	}
	for name, n := range names {
		if n > 1 {
			findings = append(findings, Finding{
				Rule:     "duplicate-name",
				Severity: Error,
				Path:     catalog.IndexFile,
				Message:  fmt.Sprintf("name %q appears %d times in the index", name, n),
			})
		}
	}
	expect := map[catalog.Category]int{
		catalog.CategoryDesignPattern: opt.DesignPatterns,
		catalog.CategoryArchitecture:  opt.Architectures,
	}
	for c, want := range expect {
		if got := counts[c]; got != want {
			findings = append(findings, Finding{
				Rule:     "entry-count",
				Severity: Error,
				Path:     catalog.IndexFile,
				Message:  fmt.Sprintf("expected %d %s entries, found %d", want, c, got),
			})
		}
	}
	if got := len(cat.Entries); got != opt.Total() {
		findings = append(findings, Finding{
			Rule:     "entry-count",
			Severity: Error,
			Path:     catalog.IndexFile,
			Message:  fmt.Sprintf("expected %d entries in total, found %d", opt.Total(), got),
		})
	}

	slugs := make(map[string]int)
	for _, a := range cat.Articles {
		slugs[a.Slug]++
	}
	for slug, n := range slugs {
		if n > 1 {
			findings = append(findings, Finding{
				Rule:     "duplicate-slug",
				Severity: Error,
				Path:     slug,
				Message:  fmt.Sprintf("slug resolves to %d article files", n),
			})
		}
	}
	return findings
}

// checkSectionOrder verifies that the canonical sections an article does
// have appear in the canonical order. Missing sections are a loose
// convention and only warned about.
func checkSectionOrder(cat *catalog.Catalog, _ Options) []Finding {
	rank := make(map[string]int, len(canonicalSections))
	for i, s := range canonicalSections {
		rank[s] = i
	}
	var findings []Finding
	for _, a := range cat.Articles {
		last := -1
		seen := make(map[string]bool)
		for _, s := range a.Sections {
			r, ok := rank[s.Title]
			if !ok {
				continue
			}
			seen[s.Title] = true
			if r < last {
				findings = append(findings, Finding{
					Rule:     "section-order",
					Severity: Error,
					Path:     a.Path,
					Message:  fmt.Sprintf("section %q appears after %q", s.Title, canonicalSections[last]),
				})
			} else {
				last = r
			}
		}
		var missing []string
		for _, s := range canonicalSections {
			if !seen[s] {
				missing = append(missing, s)
			}
		}
		if len(missing) > 0 {
			findings = append(findings, Finding{
				Rule:     "section-missing",
				Severity: Warning,
				Path:     a.Path,
				Message:  fmt.Sprintf("missing sections: %s", strings.Join(missing, ", ")),
			})
		}
	}
	return findings
}

// checkWorkedExamples verifies that each article's Worked Example section
// contains at least one fenced code block.
func checkWorkedExamples(cat *catalog.Catalog, _ Options) []Finding {
	var findings []Finding
	for _, a := range cat.Articles {
		if a.Section(workedExample) == nil {
			continue // already warned about by section-missing
		}
		if len(a.ExamplesIn(workedExample)) == 0 {
			findings = append(findings, Finding{
				Rule:     "worked-example",
				Severity: Error,
				Path:     a.Path,
				Message:  "Worked Example section has no fenced code block",
			})
		}
	}
	return findings
}

// checkCategories warns when an article's front matter category disagrees
// with the folder it lives in, or names an unknown category.
func checkCategories(cat *catalog.Catalog, _ Options) []Finding {
	var findings []Finding
	for _, a := range cat.Articles {
		fm := a.FrontMatter.Category
		if fm == "" {
			findings = append(findings, Finding{
				Rule:     "category",
				Severity: Warning,
				Path:     a.Path,
				Message:  "front matter does not name a category",
			})
			continue
		}
		if !fm.Valid() {
			findings = append(findings, Finding{
				Rule:     "category",
				Severity: Warning,
				Path:     a.Path,
				Message:  fmt.Sprintf("unknown category %q", string(fm)),
			})
			continue
		}
		if dir := folderCategory(a.Path); dir != "" && dir != fm {
			findings = append(findings, Finding{
				Rule:     "category",
				Severity: Warning,
				Path:     a.Path,
				Message:  fmt.Sprintf("front matter says %q but file lives under %q", string(fm), string(dir)),
			})
		}
	}
	return findings
}

// folderCategory derives the category from the docs subfolder of a path.
func folderCategory(p string) catalog.Category {
	parts := strings.Split(path.Clean(p), "/")
	if len(parts) >= 2 && parts[0] == catalog.DocsDir {
		return catalog.CategoryForDir(parts[1])
	}
	return ""
}
