// patternlint checks a documentation tree for rot: index rows that point at
// missing articles, articles the index forgot, sections out of order, and
// worked examples without code. It exits non-zero when any error-severity
// finding exists, making it suitable for CI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/patternbook/patternbook/catalog"
	"github.com/patternbook/patternbook/lint"
)

func main() {
	var (
		fRoot          = flag.String("root", ".", "Root of the documentation tree.")
		fPatterns      = flag.Int("patterns", lint.DefaultOptions().DesignPatterns, "Expected number of design pattern entries.")
		fArchitectures = flag.Int("architectures", lint.DefaultOptions().Architectures, "Expected number of architecture entries.")
		fQuiet         = flag.Bool("quiet", false, "Only print errors, not warnings.")
	)
	flag.Parse()

	cat, err := catalog.Load(os.DirFS(*fRoot))
	if err != nil {
		log.Fatalf("Cannot load catalog: %s", err)
	}

	opt := lint.Options{DesignPatterns: *fPatterns, Architectures: *fArchitectures}
	findings := lint.Run(cat, opt)
	for _, f := range findings {
		if *fQuiet && f.Severity != lint.Error {
			continue
		}
		fmt.Println(f)
	}

	errs := lint.ErrorCount(findings)
	fmt.Printf("%d entries, %d articles, %d errors, %d warnings\n",
		len(cat.Entries), len(cat.Articles), errs, len(findings)-errs)
	if errs > 0 {
		os.Exit(1)
	}
}
