package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/five82/postboard/internal/posts"
)

// RequestIDHeader carries the id the server assigns to every request.
const RequestIDHeader = "X-Request-ID"

// Options configure the fixture handler.
type Options struct {
	Posts  []posts.Post  `validate:"-"`
	Delay  time.Duration `validate:"gte=0"`
	Status int           `validate:"omitempty,gte=200,lte=599"` // zero means 200
	Logger *slog.Logger  `validate:"-"`
}

var validate = validator.New()

// Validate checks Delay and Status.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid fixture option %s: fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid fixture options: %w", err)
	}
	return nil
}

// NewHandler returns the fixture router serving GET /posts.
func NewHandler(opts Options) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Status == 0 {
		opts.Status = http.StatusOK
	}
	items := opts.Posts
	if items == nil {
		items = []posts.Post{}
	}

	h := &handler{
		posts:  items,
		delay:  opts.Delay,
		status: opts.Status,
		logger: opts.Logger,
	}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware(opts.Logger))
	router.HandleFunc("/posts", h.getPosts).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HttpError(w, opts.Logger, "Not found", http.StatusNotFound, nil)
	})
	return router, nil
}

type handler struct {
	posts  []posts.Post
	delay  time.Duration
	status int
	logger *slog.Logger
}

func (h *handler) getPosts(w http.ResponseWriter, r *http.Request) {
	if h.delay > 0 {
		timer := time.NewTimer(h.delay)
		defer timer.Stop()
		select {
		case <-r.Context().Done():
			return
		case <-timer.C:
		}
	}

	if h.status < 200 || h.status > 299 {
		HttpError(w, h.logger, http.StatusText(h.status), h.status, errors.New("forced status"))
		return
	}
	RespondJSON(w, h.posts, h.status)
}

// LoadFile reads a JSON array of posts.
func LoadFile(path string) ([]posts.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}
	var items []posts.Post
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode posts file: %w", err)
	}
	if items == nil {
		items = []posts.Post{}
	}
	return items, nil
}
