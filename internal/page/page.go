// Package page models the documentation page the search widget lives on:
// where the site root is, where the search index is, and how result links
// resolve from the current page.
package page

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Page is the page currently being viewed
type Page struct {
	root        *url.URL
	current     *url.URL
	searchIndex string
}

// New creates a page. site is an http(s) URL or a local directory holding
// the generated documentation, path is the page relative to the site root
// and searchIndex is the search index relative to the site root.
func New(site, path, searchIndex string) (*Page, error) {
	root, err := siteURL(site)
	if err != nil {
		return nil, err
	}

	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid page path %q: %w", path, err)
	}

	current := root.ResolveReference(rel)
	if !within(root, current) {
		return nil, fmt.Errorf("page %q is outside of site %s", path, root)
	}

	return &Page{
		root:        root,
		current:     current,
		searchIndex: searchIndex,
	}, nil
}

func siteURL(site string) (*url.URL, error) {
	if site == "" {
		return nil, fmt.Errorf("site is not set")
	}

	u, err := url.Parse(site)
	// Single letter schemes are Windows drive letters
	if err != nil || len(u.Scheme) <= 1 {
		abs, err := filepath.Abs(site)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve site directory: %w", err)
		}
		p := filepath.ToSlash(abs)
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		u = &url.URL{Scheme: "file", Path: p}
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}

// URL returns the absolute URL of the page
func (p *Page) URL() *url.URL {
	u := *p.current
	return &u
}

// Path returns the page path relative to the site root
func (p *Page) Path() string {
	return strings.TrimPrefix(p.current.Path, p.root.Path)
}

// ToRoot returns the relative prefix leading from the page's directory back
// to the site root: "" at the root, ".." one level down and so on.
func (p *Page) ToRoot() string {
	depth := strings.Count(p.Path(), "/")
	return strings.TrimSuffix(strings.Repeat("../", depth), "/")
}

// ResolveLink turns an index link into an href relative to this page.
// An empty prefix is replaced by "." so the result stays relative.
func (p *Page) ResolveLink(link string) string {
	rel := p.ToRoot()
	if rel == "" {
		rel = "."
	}
	return rel + link
}

// IndexURL returns the absolute URL of the search index
func (p *Page) IndexURL() (*url.URL, error) {
	ref, err := url.Parse(p.searchIndex)
	if err != nil {
		return nil, fmt.Errorf("invalid search index %q: %w", p.searchIndex, err)
	}
	return p.root.ResolveReference(ref), nil
}

// Target resolves an href against the page
func (p *Page) Target(href string) (*url.URL, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("invalid link %q: %w", href, err)
	}
	return p.current.ResolveReference(ref), nil
}

// IsSamePage reports whether following href stays on this page, i.e. only
// the fragment differs. The query string is not compared.
func (p *Page) IsSamePage(href string) bool {
	target, err := p.Target(href)
	if err != nil {
		return false
	}
	return target.Path == p.current.Path
}

// Navigate returns the page reached by following href
func (p *Page) Navigate(href string) (*Page, error) {
	target, err := p.Target(href)
	if err != nil {
		return nil, err
	}
	if !within(p.root, target) {
		return nil, fmt.Errorf("link %q leaves site %s", href, p.root)
	}

	return &Page{
		root:        p.root,
		current:     target,
		searchIndex: p.searchIndex,
	}, nil
}

// within reports whether u lies under the site root
func within(root, u *url.URL) bool {
	return u.Scheme == root.Scheme && u.Host == root.Host && strings.HasPrefix(u.Path, root.Path)
}

func (p *Page) String() string {
	return p.current.String()
}
