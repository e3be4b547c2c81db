package nav

// Stack holds navigation history, newest entry last.
type Stack struct {
	entries []Route
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{entries: make([]Route, 0, 2)}
}

// Push adds a route on top.
func (s *Stack) Push(r Route) {
	s.entries = append(s.entries, r)
}

// Pop removes and returns the top route. ok is false when empty.
func (s *Stack) Pop() (Route, bool) {
	if len(s.entries) == 0 {
		return Route{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top route without removing it.
func (s *Stack) Peek() (Route, bool) {
	if len(s.entries) == 0 {
		return Route{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
