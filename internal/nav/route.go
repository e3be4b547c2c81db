package nav

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/five82/postboard/internal/posts"
)

// Screen identifies one of the two screens.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const (
	listPath     = "postList"
	detailPrefix = "postDetail"
)

// Route is a navigation target. Detail routes carry the selected post's
// title and body by value.
type Route struct {
	Screen Screen
	Title  string
	Body   string
}

// ListRoute is the entry route.
func ListRoute() Route {
	return Route{Screen: ScreenList}
}

// DetailRoute builds the detail route for p.
func DetailRoute(p posts.Post) Route {
	return Route{Screen: ScreenDetail, Title: p.Title, Body: p.Body}
}

// Post returns the title/body pair carried by a detail route.
func (r Route) Post() posts.Post {
	return posts.Post{Title: r.Title, Body: r.Body}
}

// Path encodes the route as postList or postDetail/{title}/{body}. Each
// segment is percent-encoded so reserved characters cannot split it.
func (r Route) Path() string {
	if r.Screen != ScreenDetail {
		return listPath
	}
	return detailPrefix + "/" + url.PathEscape(r.Title) + "/" + url.PathEscape(r.Body)
}

// ParseRoute decodes a path produced by Route.Path.
func ParseRoute(path string) (Route, error) {
	if path == listPath {
		return ListRoute(), nil
	}
	rest, ok := strings.CutPrefix(path, detailPrefix+"/")
	if !ok {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}
	segments := strings.Split(rest, "/")
	if len(segments) != 2 {
		return Route{}, fmt.Errorf("route %q: want 2 segments, got %d", path, len(segments))
	}
	title, err := url.PathUnescape(segments[0])
	if err != nil {
		return Route{}, fmt.Errorf("route %q: decode title: %w", path, err)
	}
	body, err := url.PathUnescape(segments[1])
	if err != nil {
		return Route{}, fmt.Errorf("route %q: decode body: %w", path, err)
	}
	return Route{Screen: ScreenDetail, Title: title, Body: body}, nil
}
