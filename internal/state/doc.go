// Package state owns the list screen's data: the fetched posts, the
// Loading/Loaded/Failed phase, the last error and the search query.
//
// # Lifecycle
//
//	NewController()  ──>  Loading
//	Load()           ──>  Loaded  (posts stored)
//	                 └─>  Failed  (message stored, list cleared)
//
// Load fetches exactly once per controller; a second call returns
// ErrAlreadyLoaded. There is no path back to Loading short of building a new
// controller.
//
// # Concurrency Model
//
// The UI runs Load inside a Bubble Tea command, so the fetch completes on a
// separate goroutine while the UI keeps reading State(). A sync.RWMutex
// guards the state; State returns a copy so callers can never mutate the
// stored posts.
//
// Every Load captures a generation number. Teardown bumps the generation and
// cancels the fetch context, so a result that still arrives after the
// screen is gone is dropped instead of written.
//
// # Filtering
//
// Filter and ListState.Filtered match the query against titles only, using
// Unicode case folding from golang.org/x/text/cases. The empty query
// matches every post and order is always preserved.
package state
