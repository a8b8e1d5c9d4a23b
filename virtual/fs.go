/*
virtual presents a documentation tree as a web site. It wraps an fs.FS whose
content is Markdown articles and exposes a view where every article appears as
a rendered HTML page, suitable for http.FileServer via http.FS.

When an endpoint like "docs/design-patterns/factory-method/index.html" is
opened and no such file exists, the file system looks for the Markdown file
"docs/design-patterns/factory-method/index.md". If present, a virtual file is
returned that renders the Markdown into HTML through a template, and the
underlying Markdown file is hidden from view. At the root, "index.html" also
falls back to "readme.md", so the catalog page of a documentation set serves
as the site's home page without further arrangement.

Front matter may be TOML (delimited by "+++") or YAML (delimited by "---")
and is parsed by the catalog package; see catalog.FrontMatter for the fields.
The "template" front matter field overrides the template used for a page, and
"redirect" issues a meta-refresh to another location.

A special file "patternbook.cfg" at the root exposes settings you can read
via the Config function. It is hidden from view, as are the "template" folder
and any file or folder starting with a period.

Templates use the html/template package. A template named "default" renders
Markdown pages; it can be replaced by placing HTML templates in the
"template" folder at the root. Templates receive the page front matter, page
information, and the rendered Markdown, and may call these helpers:

	dir(path string) []virtual.File
		Contents of the given folder, excluding special files and subfolders
	bycategory([]virtual.File, string) []virtual.File
		Keep only files whose front matter category matches
	sortbyname([]virtual.File) []virtual.File
		Sort by name (reverse)
	sortbytime([]virtual.File) []virtual.File
		Sort by time (reverse)
	match(string, ...string) bool
		Match string against file patterns
	filter([]virtual.File, ...string) []virtual.File
		Filter list against file patterns
	join(parts ...string) string
		The same as path.Join
	ext(path string) string
		The same as path.Ext
	prev([]virtual.File, string) *virtual.File
		Find the previous file based on Filename
	next([]virtual.File, string) *virtual.File
		Find the next file based on Filename
	reverse([]virtual.File) []virtual.File
		Reverse the list
	trimsuffix, trimprefix, trimspace
		The strings functions of the same name
	markdown(string) template.HTML
		Render a Markdown file into HTML
	frontmatter(string) *catalog.FrontMatter
		Read front matter from a file
	now() time.Time
		Current time

If a file named "sitemap.txt" is present at the root, it is run as a text
template receiving the list of page paths, letting the site customize its
site map.

To serve custom error pages, place 404.md and 500.md files at the root; the
web package's ErrorHandler will request 404.html or 500.html when the file
system reports an error.
*/
package virtual

import (
	"errors"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// FS provides a virtual view of a documentation tree suitable for serving
// articles in a web format.
type FS struct {
	fs       fs.FS
	tpl      *template.Template
	tplMutex sync.RWMutex
}

// New returns a new FS that presents a virtual view of innerFS.
func New(innerFS fs.FS) (*FS, error) {
	var vfs = FS{
		fs: innerFS,
	}
	_, err := vfs.loadTemplates()
	if err != nil {
		return nil, err
	}

	return &vfs, nil
}

// Open opens the named file.
//
// When Open returns an error, it should be of type *fs.PathError
// with the Op field set to "open", the Path field set to name,
// and the Err field describing the problem.
//
// Open should reject attempts to open names that do not satisfy
// fs.ValidPath(name), returning a *PathError with Err set to
// ErrInvalid or ErrNotExist.
func (vfs *FS) Open(name string) (fs.File, error) {
	// Make sure the path is valid per fs rules
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	// Don't show hidden or special files
	if isHiddenFile(name) || (name != "." && containsSpecialFile(name)) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	// Markdown sources are only reachable through their rendered form
	if path.Ext(name) == ".md" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	// open the file with the underlying file system
	f, err := vfs.fs.Open(name)
	if err != nil {
		// for pages that don't exist, check for underlying Markdown sources
		if errors.Is(err, fs.ErrNotExist) && path.Ext(name) == ".html" {
			for _, source := range markdownSources(name) {
				f, err2 := vfs.fs.Open(source)
				if err2 == nil {
					// match found, so return a virtual file
					defer f.Close()
					return vfs.newArticleFile(f, name)
				}
			}
		}
		// no matching underlying file; return error from opening the underlying file
		return f, err
	}
	// check for directory
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Directories need to be virtual so that we don't
	// accidentally pick up the wrong ReadDir implementation.
	if fi.IsDir() {
		// don't close f because it will be used for ReadDir
		return &virtualDir{File: f, path: name, vfs: vfs}, nil
	}
	// The sitemap file, if present, needs to be handled as a virtual
	// file to process the template.
	if name == "sitemap.txt" {
		defer f.Close()
		return vfs.newSitemapFile(f, name)
	}
	return f, nil
}

// markdownSources lists the Markdown files that can back the named HTML
// endpoint, in the order they should be tried. The root index may be backed
// by the documentation set's readme.
func markdownSources(name string) []string {
	sources := []string{strings.TrimSuffix(name, path.Ext(name)) + ".md"}
	if name == "index.html" {
		sources = append(sources, "readme.md")
	}
	return sources
}
