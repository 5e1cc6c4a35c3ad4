// Package blog serves the fixed article catalogue behind the blog page.
package blog

import (
	"sort"
	"strings"
)

// AllCategories matches every post.
const AllCategories = "All"

type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime string `json:"read_time"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Views    int    `json:"views,omitempty"`
	Featured bool   `json:"featured,omitempty"`
}

type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalogue is an immutable set of posts: one featured plus the list.
type Catalogue struct {
	featured Post
	posts    []Post
}

func NewCatalogue(featured Post, posts []Post) *Catalogue {
	featured.Featured = true
	return &Catalogue{featured: featured, posts: append([]Post(nil), posts...)}
}

// Default returns the catalogue shipped with the site.
func Default() *Catalogue {
	return NewCatalogue(featuredPost, fixturePosts)
}

func (c *Catalogue) Featured() Post { return c.featured }

// Posts returns the non-featured posts.
func (c *Catalogue) Posts() []Post { return append([]Post(nil), c.posts...) }

// Categories counts every post, featured included. "All" comes first and
// the rest are sorted by name.
func (c *Catalogue) Categories() []Category {
	counts := map[string]int{c.featured.Category: 1}
	for _, p := range c.posts {
		counts[p.Category]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Category, 0, len(names)+1)
	out = append(out, Category{Name: AllCategories, Count: len(c.posts) + 1})
	for _, name := range names {
		out = append(out, Category{Name: name, Count: counts[name]})
	}
	return out
}

// Filter returns the non-featured posts whose title, excerpt or author
// contains search (case-insensitive) and whose category matches. An empty
// category behaves like AllCategories.
func (c *Catalogue) Filter(search, category string) []Post {
	needle := strings.ToLower(search)
	out := []Post{}
	for _, p := range c.posts {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Excerpt), needle) &&
			!strings.Contains(strings.ToLower(p.Author), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Find looks a post up by id, featured included.
func (c *Catalogue) Find(id int) (Post, bool) {
	if c.featured.ID == id {
		return c.featured, true
	}
	for _, p := range c.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
