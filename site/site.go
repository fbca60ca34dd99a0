// Package site describes the dashboards website: its title, the pages listed
// in the sidebar and the options of the publishing framework.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// ErrPageNotFound is returned when a path is not listed in the site.
var ErrPageNotFound = errors.New("page not found")

// Site is the site definition.
type Site struct {
	Title  string `yaml:"title"`
	Pages  []Page `yaml:"pages"`
	Head   string `yaml:"head,omitempty"`
	Header string `yaml:"header,omitempty"`
	Footer string `yaml:"footer,omitempty"`
	Root   string `yaml:"root"`   // path to the source root
	Output string `yaml:"output"` // path to the output root for build
	Theme  string `yaml:"theme"`

	Sidebar           bool `yaml:"sidebar"`
	Toc               bool `yaml:"toc"`
	Pager             bool `yaml:"pager"`
	Search            bool `yaml:"search"`
	Linkify           bool `yaml:"linkify"`
	Typographer       bool `yaml:"typographer"`
	PreserveExtension bool `yaml:"preserveExtension"`
	PreserveIndex     bool `yaml:"preserveIndex"`
}

// Page is either a page, with a path, or a section holding pages.
type Page struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path,omitempty"`
	Pages []Page `yaml:"pages,omitempty"`
}

// IsSection reports whether p groups other pages.
func (p Page) IsSection() bool { return p.Path == "" }

// Link is a page as it appears in the sidebar.
type Link struct {
	Section string // name of the enclosing section, empty at the top level
	Name    string
	Path    string
}

// newSite returns a site with the framework defaults.
func newSite() *Site {
	return &Site{
		Root:    "src",
		Output:  "dist",
		Theme:   "light",
		Sidebar: true,
		Toc:     true,
		Pager:   true,
		Linkify: true,
	}
}

// Parse decodes a YAML site definition. Omitted options keep their default.
func Parse(data []byte) (*Site, error) {
	s := newSite()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse site: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the site definition in filename.
func Load(filename string) (*Site, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Default returns the site of the NC housing dashboards.
func Default() *Site {
	s, err := Parse(defaultSite)
	if err != nil {
		// the embedded definition is checked by tests.
		panic(err)
	}
	return s
}

// Validate checks that every page has a name, that paths are absolute and
// that no path is listed twice.
func (s *Site) Validate() error {
	if s.Title == "" {
		return errors.New("site has no title")
	}
	seen := make(map[string]bool)
	var check func(section string, pages []Page) error
	check = func(section string, pages []Page) error {
		for _, p := range pages {
			if p.Name == "" {
				return fmt.Errorf("unnamed page in section %q", section)
			}
			if p.IsSection() {
				if len(p.Pages) == 0 {
					return fmt.Errorf("section %q has no pages", p.Name)
				}
				if err := check(p.Name, p.Pages); err != nil {
					return err
				}
				continue
			}
			if len(p.Pages) > 0 {
				return fmt.Errorf("page %q has both a path and pages", p.Name)
			}
			if !strings.HasPrefix(p.Path, "/") {
				return fmt.Errorf("page %q: path %q is not absolute", p.Name, p.Path)
			}
			if seen[p.Path] {
				return fmt.Errorf("page %q: path %q is listed twice", p.Name, p.Path)
			}
			seen[p.Path] = true
		}
		return nil
	}
	return check("", s.Pages)
}

// Links lists the pages in sidebar order.
func (s *Site) Links() []Link {
	var links []Link
	var walk func(section string, pages []Page)
	walk = func(section string, pages []Page) {
		for _, p := range pages {
			if p.IsSection() {
				walk(p.Name, p.Pages)
				continue
			}
			links = append(links, Link{Section: section, Name: p.Name, Path: p.Path})
		}
	}
	walk("", s.Pages)
	return links
}

// Lookup returns the link to the page at path.
func (s *Site) Lookup(pagePath string) (Link, error) {
	for _, l := range s.Links() {
		if l.Path == pagePath {
			return l, nil
		}
	}
	return Link{}, fmt.Errorf("%w: %q", ErrPageNotFound, pagePath)
}

// Neighbors returns the previous and next pages of the page at path, as
// shown by the pager. Missing neighbors are zero Links.
func (s *Site) Neighbors(pagePath string) (prev, next Link, err error) {
	links := s.Links()
	for i, l := range links {
		if l.Path != pagePath {
			continue
		}
		if i > 0 {
			prev = links[i-1]
		}
		if i < len(links)-1 {
			next = links[i+1]
		}
		return prev, next, nil
	}
	return Link{}, Link{}, fmt.Errorf("%w: %q", ErrPageNotFound, pagePath)
}

// Source returns the markdown file rendering the page at path.
func (s *Site) Source(pagePath string) string {
	return path.Join(s.Root, pagePath+".md")
}

// Href returns the URL of the page at path in the built site.
func (s *Site) Href(pagePath string) string {
	if s.PreserveIndex && strings.HasSuffix(pagePath, "/") {
		pagePath += "index"
	}
	if s.PreserveExtension {
		return pagePath + ".html"
	}
	return pagePath
}
