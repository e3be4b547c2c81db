package state

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/five82/postboard/internal/posts"
)

// Filter returns the posts whose title contains query, ignoring case, in
// their original order. An empty query matches everything. The result is
// always a fresh slice.
func Filter(items []posts.Post, query string) []posts.Post {
	out := make([]posts.Post, 0, len(items))
	if query == "" {
		return append(out, items...)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	for _, p := range items {
		if strings.Contains(fold.String(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}
