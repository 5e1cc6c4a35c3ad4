package blog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	want := []Category{
		{Name: "All", Count: 9},
		{Name: "Career Advice", Count: 3},
		{Name: "Industry Insights", Count: 1},
		{Name: "Interview Prep", Count: 2},
		{Name: "Personal Branding", Count: 1},
		{Name: "Portfolio Tips", Count: 1},
		{Name: "Resume Tips", Count: 1},
	}
	if diff := cmp.Diff(want, Default().Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func ids(posts []Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	c := Default()
	tests := []struct {
		name     string
		search   string
		category string
		want     []int
	}{
		{"everything", "", "All", []int{2, 3, 4, 5, 6, 7, 8, 9}},
		{"empty category means all", "", "", []int{2, 3, 4, 5, 6, 7, 8, 9}},
		{"category", "", "Interview Prep", []int{4, 8}},
		{"title search ignores case", "LINKEDIN", "", []int{6}},
		{"excerpt search", "star method", "All", []int{8}},
		{"author search", "portfolio team", "Career Advice", []int{2, 5, 9}},
		{"featured excluded", "", "Resume Tips", []int{}},
		{"no match", "astronaut", "All", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.search, tt.category)))
		})
	}
}

func TestFind(t *testing.T) {
	c := Default()
	p, ok := c.Find(1)
	assert.True(t, ok)
	assert.True(t, p.Featured)

	p, ok = c.Find(7)
	assert.True(t, ok)
	assert.Equal(t, "Industry Insights", p.Category)

	_, ok = c.Find(42)
	assert.False(t, ok)
}

func TestPostsIsACopy(t *testing.T) {
	c := Default()
	posts := c.Posts()
	posts[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Posts()[0].Title)
}
