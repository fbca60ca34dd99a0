package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/etnz/housing/renderer"
	"github.com/etnz/housing/site"
	"github.com/google/subcommands"
)

type pagesCmd struct{}

func (*pagesCmd) Name() string     { return "pages" }
func (*pagesCmd) Synopsis() string { return "show the pages of the dashboards website" }
func (*pagesCmd) Usage() string {
	return `hac pages [<path>]

  Without argument, prints the website navigation: its sections and pages in
  sidebar order. With a page path, prints where the page comes from and its
  neighbors in the pager.

  The site definition is the embedded one, unless -site or HAC_SITE names a
  YAML file.

Usage Examples:
$ hac pages
$ hac pages /dashboards/dashboard-hmda-SQ2

`
}

func (*pagesCmd) SetFlags(f *flag.FlagSet) {}

func (*pagesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSite()
	if err != nil {
		slog.Error("cannot load site", "err", err)
		return subcommands.ExitFailure
	}
	if f.NArg() == 0 {
		printMarkdown(renderer.RenderNavigation(s))
		return subcommands.ExitSuccess
	}

	for _, p := range f.Args() {
		md, err := pageMarkdown(s, p)
		if err != nil {
			slog.Error("cannot show page", "path", p, "err", err)
			return subcommands.ExitFailure
		}
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// loadSite returns the site selected by the global flag.
func loadSite() (*site.Site, error) {
	if *siteFile == "" {
		return site.Default(), nil
	}
	slog.Debug("loading site", "file", *siteFile)
	return site.Load(*siteFile)
}

// pageMarkdown describes a single page.
func pageMarkdown(s *site.Site, pagePath string) (string, error) {
	l, err := s.Lookup(pagePath)
	if err != nil {
		return "", err
	}
	prev, next, err := s.Neighbors(pagePath)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", l.Name)
	if l.Section != "" {
		fmt.Fprintf(&b, "- Section: %s\n", l.Section)
	}
	fmt.Fprintf(&b, "- Source: `%s`\n", s.Source(l.Path))
	fmt.Fprintf(&b, "- URL: `%s`\n", s.Href(l.Path))
	if prev != (site.Link{}) {
		fmt.Fprintf(&b, "- Previous: [%s](%s)\n", prev.Name, s.Href(prev.Path))
	}
	if next != (site.Link{}) {
		fmt.Fprintf(&b, "- Next: [%s](%s)\n", next.Name, s.Href(next.Path))
	}
	return b.String(), nil
}
