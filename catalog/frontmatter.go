package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds data scraped from the top of an article. Either TOML
// (delimited by "+++") or YAML (delimited by "---") is accepted; no field is
// required.
type FrontMatter struct {
	Title       string    `toml:"title" yaml:"title"`             // Title of this page
	Emoji       string    `toml:"emoji" yaml:"emoji"`             // Emoji shown next to the title
	Category    Category  `toml:"category" yaml:"category"`       // design-pattern or architecture
	Description string    `toml:"description" yaml:"description"` // One-line summary for the index
	Date        time.Time `toml:"date" yaml:"date"`               // Date the article appears
	Tags        []string  `toml:"tags" yaml:"tags"`               // Tags to assign to this article
	Template    string    `toml:"template" yaml:"template"`       // The name of the template to use
	Redirect    string    `toml:"redirect" yaml:"redirect"`       // Issue a redirect to another location
	Expires     Duration  `toml:"expires" yaml:"expires"`         // Use for pages that need an Expires header
}

var (
	// tomlDelim matches the "+++" front matter delimiter on its own line.
	tomlDelim = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)
	// yamlDelim matches the "---" front matter delimiter on its own line.
	yamlDelim = regexp.MustCompile(`(?m)^\s*---\s*$`)
)

// extractFrontMatter splits the front matter and the Markdown body, reporting
// which format the front matter was written in ("toml", "yaml", or "" when
// none is present).
func extractFrontMatter(x []byte) (fm, r []byte, format string) {
	for _, d := range []struct {
		re     *regexp.Regexp
		format string
	}{{tomlDelim, "toml"}, {yamlDelim, "yaml"}} {
		subs := d.re.Split(string(x), 3)
		if len(subs) != 3 {
			continue
		}
		// anything before the opening delimiter means it isn't front matter
		if s := strings.TrimSpace(subs[0]); len(s) > 0 {
			continue
		}
		return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2])), d.format
	}
	return nil, x, ""
}

// ParseFrontMatter splits and unmarshals the front matter of an article,
// returning the remaining Markdown body. Absent front matter is not an
// error; the zero FrontMatter and the full input are returned.
func ParseFrontMatter(b []byte) (FrontMatter, []byte, error) {
	var front FrontMatter
	fm, body, format := extractFrontMatter(b)
	if len(fm) == 0 {
		return front, body, nil
	}
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(fm, &front)
	case "yaml":
		err = yaml.Unmarshal(fm, &front)
	}
	if err != nil {
		return front, body, fmt.Errorf("ParseFrontMatter: %w", err)
	}
	return front, body, nil
}
