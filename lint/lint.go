/*
lint checks a loaded catalog for documentation rot: index rows pointing at
missing files, article files no index row links to, articles whose sections
drift out of the canonical order, and worked examples that lost their code
blocks. Findings are advisory data; callers decide whether warnings matter.
*/
package lint

import (
	"fmt"

	"github.com/patternbook/patternbook/catalog"
)

// Severity says how seriously to take a finding.
type Severity int

const (
	Warning Severity = iota
	Error
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Finding is one problem detected in the documentation tree.
type Finding struct {
	Rule     string   // short rule name, e.g. "index-link"
	Severity Severity // error or warning
	Path     string   // file or index target the finding is about
	Message  string
}

// String formats the finding for log output.
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", f.Severity, f.Path, f.Message, f.Rule)
}

// Options sets the expected catalog shape.
type Options struct {
	DesignPatterns int // expected number of design pattern entries
	Architectures  int // expected number of architecture entries
}

// DefaultOptions matches the published catalog: 15 design patterns and
// 6 architectures, 21 entries in total.
func DefaultOptions() Options {
	return Options{DesignPatterns: 15, Architectures: 6}
}

// Total is the expected entry count across categories.
func (o Options) Total() int {
	return o.DesignPatterns + o.Architectures
}

// A rule inspects the catalog and reports findings.
type rule func(cat *catalog.Catalog, opt Options) []Finding

var rules = []rule{
	checkIndexTargets,
	checkArticleLinks,
	checkCatalogShape,
	checkSectionOrder,
	checkWorkedExamples,
	checkCategories,
}

// Run applies every rule to the catalog and returns the combined findings.
func Run(cat *catalog.Catalog, opt Options) []Finding {
	var findings []Finding
	for _, r := range rules {
		findings = append(findings, r(cat, opt)...)
	}
	return findings
}

// ErrorCount returns how many findings have error severity.
func ErrorCount(findings []Finding) int {
	n := 0
	for _, f := range findings {
		if f.Severity == Error {
			n++
		}
	}
	return n
}
