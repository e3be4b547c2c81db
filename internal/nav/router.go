package nav

import (
	"fmt"

	"github.com/five82/postboard/internal/posts"
)

// Router is the two-screen navigation stack: the list at the root and at
// most one detail above it.
type Router struct {
	stack *Stack
}

// NewRouter returns a router positioned on the list screen.
func NewRouter() *Router {
	s := NewStack()
	s.Push(ListRoute())
	return &Router{stack: s}
}

// Current returns the route on top of the stack.
func (r *Router) Current() Route {
	top, ok := r.stack.Peek()
	if !ok {
		return ListRoute()
	}
	return top
}

// Depth returns the number of routes on the stack.
func (r *Router) Depth() int {
	return r.stack.Len()
}

// Open navigates to the detail screen for p. Title and body are copied
// through the encoded path, the same boundary a deep link would cross.
func (r *Router) Open(p posts.Post) (Route, error) {
	if err := r.Navigate(DetailRoute(p).Path()); err != nil {
		return Route{}, err
	}
	return r.Current(), nil
}

// Navigate moves to the route encoded by path. The list path unwinds to the
// root; a detail path replaces any detail already shown.
func (r *Router) Navigate(path string) error {
	route, err := ParseRoute(path)
	if err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	switch route.Screen {
	case ScreenList:
		for r.stack.Len() > 1 {
			r.stack.Pop()
		}
	case ScreenDetail:
		if r.Current().Screen == ScreenDetail {
			r.stack.Pop()
		}
		r.stack.Push(route)
	}
	return nil
}

// Back pops the detail screen. It reports false at the root.
func (r *Router) Back() bool {
	if r.stack.Len() <= 1 {
		return false
	}
	r.stack.Pop()
	return true
}
