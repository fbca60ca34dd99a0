package site

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Title != "Housing Affordability and Equity in NC" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Root != "src" || s.Output != "dist" {
		t.Errorf("Root, Output = %q, %q", s.Root, s.Output)
	}
	if !s.Sidebar || !s.Pager || s.Search {
		t.Errorf("framework defaults not applied: %+v", s)
	}
	if len(s.Pages) != 3 {
		t.Fatalf("got %d sections, want 3", len(s.Pages))
	}
	links := s.Links()
	if len(links) != 10 {
		t.Fatalf("got %d links, want 10", len(links))
	}
	first := Link{Section: "Affordability Across Race in NC", Name: "Rent vs. Wages", Path: "/dashboards/SQ3dashboard"}
	if links[0] != first {
		t.Errorf("first link = %+v, want %+v", links[0], first)
	}
	want := `Created by Justin Watson, Ademola Adepoju, and Madison Greenstein. | <a href="https://jcddtc.netlify.app/" target="_blank" rel="noopenner noreferrer">NCSU ENG 583 - Justice-Centered Data Design in TPC</a>`
	if s.Footer != want {
		t.Errorf("Footer = %q, want %q", s.Footer, want)
	}
}

func TestLookup(t *testing.T) {
	s := Default()
	l, err := s.Lookup("/dashboards/dashboard-hmda-SQ2")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if l.Name != "Mortgage Disparity" {
		t.Errorf("Lookup() = %+v", l)
	}
	if _, err := s.Lookup("/nowhere"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("Lookup(/nowhere) error = %v, want ErrPageNotFound", err)
	}
}

func TestNeighbors(t *testing.T) {
	s := Default()
	prev, next, err := s.Neighbors("/dashboards/dashboard-evictions-SQ1")
	if err != nil {
		t.Fatalf("Neighbors() error = %v", err)
	}
	if prev.Path != "/dashboards/dashboard-hmda-SQ2" || next.Path != "/processing-example" {
		t.Errorf("Neighbors() = %+v, %+v", prev, next)
	}
	prev, _, _ = s.Neighbors("/dashboards/SQ3dashboard")
	if prev != (Link{}) {
		t.Errorf("first page has a previous page: %+v", prev)
	}
}

func TestSourceAndHref(t *testing.T) {
	s := Default()
	if got := s.Source("/processing/processing-SQ3"); got != "src/processing/processing-SQ3.md" {
		t.Errorf("Source() = %q", got)
	}
	if got := s.Href("/processing-example"); got != "/processing-example" {
		t.Errorf("Href() = %q", got)
	}
	s.PreserveExtension = true
	if got := s.Href("/processing-example"); got != "/processing-example.html" {
		t.Errorf("Href() with extension = %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no title", "pages: []"},
		{"relative path", "title: t\npages:\n  - name: a\n    path: a"},
		{"duplicate path", "title: t\npages:\n  - name: a\n    path: /a\n  - name: b\n    path: /a"},
		{"empty section", "title: t\npages:\n  - name: s"},
		{"unnamed", "title: t\npages:\n  - path: /a"},
		{"not yaml", "title: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() expected an error")
			}
		})
	}
}

func TestParse_Options(t *testing.T) {
	s, err := Parse([]byte("title: t\ntheme: dark\nsidebar: false\nsearch: true\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Theme != "dark" || s.Sidebar || !s.Search || !s.Toc {
		t.Errorf("Parse() = %+v", s)
	}
}
