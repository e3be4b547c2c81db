package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/five82/postboard/internal/posts"
)

// ErrAlreadyLoaded is returned by Load on every call after the first.
var ErrAlreadyLoaded = errors.New("posts already requested for this screen")

// ErrTornDown is returned by Load once Teardown has run.
var ErrTornDown = errors.New("posts screen torn down")

// Phase is the lifecycle of the posts list.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ListState is a point-in-time view of the list screen.
type ListState struct {
	Posts []posts.Post
	Phase Phase
	Err   string
	Query string
}

// IsLoading reports whether the fetch has not resolved yet.
func (s ListState) IsLoading() bool {
	return s.Phase == PhaseLoading
}

// Filtered projects Posts through Query. Recomputed on every call.
func (s ListState) Filtered() []posts.Post {
	return Filter(s.Posts, s.Query)
}

// ErrorText is the line displayed in place of the list after a failure.
func (s ListState) ErrorText() string {
	if s.Phase != PhaseFailed {
		return ""
	}
	return "Error: " + s.Err
}

// Controller owns the posts list for one mount of the list screen. The
// fetch runs off the UI goroutine, so access is mutex guarded.
type Controller struct {
	source posts.Source
	logger *slog.Logger

	mu         sync.RWMutex
	state      ListState
	started    bool
	closed     bool
	generation uint64
	cancel     context.CancelFunc
}

// NewController returns a controller in the Loading phase. A nil logger
// discards output.
func NewController(source posts.Source, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		source: source,
		logger: logger,
		state:  ListState{Phase: PhaseLoading},
	}
}

// Load performs the one fetch for this controller and applies its result.
// It blocks until the source returns. Calls after the first return
// ErrAlreadyLoaded without touching the source.
func (c *Controller) Load(ctx context.Context) error {
	gen, fetchCtx, err := c.begin(ctx)
	if err != nil {
		return err
	}

	items, fetchErr := c.source.FetchPosts(fetchCtx)
	if !c.apply(gen, items, fetchErr) {
		c.logger.Debug("discarded stale posts result", slog.Uint64("generation", gen))
	}
	return nil
}

func (c *Controller) begin(ctx context.Context) (uint64, context.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, nil, ErrTornDown
	}
	if c.started {
		return 0, nil, ErrAlreadyLoaded
	}
	c.started = true
	if c.source == nil {
		c.state.Phase = PhaseFailed
		c.state.Err = "no posts source configured"
		return 0, nil, errors.New(c.state.Err)
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.generation++
	c.state.Phase = PhaseLoading
	c.state.Err = ""
	c.logger.Debug("fetching posts", slog.Uint64("generation", c.generation))
	return c.generation, fetchCtx, nil
}

// apply stores a fetch result if gen is still current. It reports whether
// the result was used.
func (c *Controller) apply(gen uint64, items []posts.Post, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		return false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		c.state.Phase = PhaseFailed
		c.state.Err = posts.ErrorMessage(err)
		c.state.Posts = nil
		c.logger.Warn("posts fetch failed", slog.String("error", c.state.Err))
		return true
	}

	c.state.Phase = PhaseLoaded
	c.state.Err = ""
	c.state.Posts = clonePosts(items)
	c.logger.Info("posts loaded", slog.Int("count", len(items)))
	return true
}

// SetQuery replaces the search query. The phase is unchanged.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query = query
}

// State returns a copy of the current list state.
func (c *Controller) State() ListState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.state
	snap.Posts = clonePosts(c.state.Posts)
	return snap
}

// Teardown cancels an in-flight fetch and guarantees its result, if it
// still arrives, is dropped. Safe to call more than once.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func clonePosts(items []posts.Post) []posts.Post {
	if len(items) == 0 {
		return nil
	}
	dup := make([]posts.Post, len(items))
	copy(dup, items)
	return dup
}
