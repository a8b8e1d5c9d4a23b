package virtual

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/patternbook/patternbook/catalog"
	"github.com/russross/blackfriday/v2"
)

// newArticleFile reads the underlying Markdown file, extracts the front
// matter, renders the Markdown, and executes the specified template,
// returning the resulting renderFile.
func (vfs *FS) newArticleFile(f fs.File, pathname string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newArticleFile: %w", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newArticleFile: %w", err)
	}

	front, r, err := catalog.ParseFrontMatter(b)
	if err != nil {
		return nil, fmt.Errorf("newArticleFile: %w", err)
	}

	md := template.HTML(blackfriday.Run(r, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))

	// prepare template data
	p, bn := path.Split(pathname)
	var data = data{
		FrontMatter: front,
		Page: pageInfo{
			Path:     p,
			Filename: bn,
		},
		Content: md,
	}

	// Render the HTML template
	templateName := "default"
	if data.FrontMatter.Template != "" {
		templateName = data.FrontMatter.Template
	}
	tpl := vfs.getTemplates()
	var wtr bytes.Buffer
	err = tpl.ExecuteTemplate(&wtr, templateName, data)
	if err != nil {
		log.Printf("Error executing template: %s", err)
	}

	return &renderFile{
		virtualFile: virtualFile{
			File: f,
			name: bn,
		},
		info:   fi,
		reader: bytes.NewReader(wtr.Bytes()),
		size:   int64(wtr.Len()),
	}, nil
}

// newSitemapFile parses the underlying text file as a template, walks the
// documentation tree for page endpoints, and executes the template,
// returning the resulting renderFile.
func (vfs *FS) newSitemapFile(f fs.File, pathname string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	tpl, err := texttemplate.New("sitemap").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	pages, err := vfs.pagePaths()
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	_, bn := path.Split(pathname)
	var wtr bytes.Buffer
	err = tpl.Execute(&wtr, pages)
	if err != nil {
		log.Printf("Error executing sitemap template: %s", err)
	}
	return &renderFile{
		virtualFile: virtualFile{
			File: f,
			name: bn,
		},
		info:   fi,
		reader: bytes.NewReader(wtr.Bytes()),
		size:   int64(wtr.Len()),
	}, nil
}

// pagePaths walks the underlying tree and lists the site's page endpoints.
// Folder indexes are listed as the folder path, other Markdown files without
// their extension, and pages dated in the future are left out.
func (vfs *FS) pagePaths() ([]string, error) {
	var result []string
	now := time.Now()
	err := fs.WalkDir(vfs.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && (isHiddenFile(p) || containsSpecialFile(p)) {
				return fs.SkipDir
			}
			return nil
		}
		if isHiddenFile(p) || containsSpecialFile(p) || path.Ext(p) != ".md" {
			return nil
		}
		// error pages are served, not listed
		if p == "404.md" || p == "500.md" {
			return nil
		}
		b, err := fs.ReadFile(vfs.fs, p)
		if err != nil {
			return err
		}
		front, _, err := catalog.ParseFrontMatter(b)
		if err != nil {
			log.Printf("pagePaths: %s", err)
		}
		if !front.Date.IsZero() && front.Date.After(now) {
			return nil
		}
		switch {
		case p == catalog.IndexFile:
			p = ""
		case path.Base(p) == "index.md":
			p = strings.TrimSuffix(p, "index.md")
		default:
			p = strings.TrimSuffix(p, ".md")
		}
		result = append(result, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(result)
	return result, nil
}
