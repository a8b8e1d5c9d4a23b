package lint

import (
	"os"
	"testing"

	"github.com/patternbook/patternbook/catalog"
)

// TestPublishedTree lints the repository's own documentation tree: the
// catalog must hold exactly 15 design patterns and 6 architectures, every
// index row must resolve, and every article must lint clean.
func TestPublishedTree(t *testing.T) {
	cat, err := catalog.Load(os.DirFS(".."))
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Entries) != DefaultOptions().Total() {
		t.Errorf("expected %d index entries, found %d", DefaultOptions().Total(), len(cat.Entries))
	}
	if len(cat.Articles) != DefaultOptions().Total() {
		t.Errorf("expected %d articles, found %d", DefaultOptions().Total(), len(cat.Articles))
	}
	if got := len(cat.ByCategory(catalog.CategoryDesignPattern)); got != DefaultOptions().DesignPatterns {
		t.Errorf("expected %d design patterns, found %d", DefaultOptions().DesignPatterns, got)
	}
	if got := len(cat.ByCategory(catalog.CategoryArchitecture)); got != DefaultOptions().Architectures {
		t.Errorf("expected %d architectures, found %d", DefaultOptions().Architectures, got)
	}
	for _, f := range Run(cat, DefaultOptions()) {
		t.Errorf("%s", f)
	}
}
