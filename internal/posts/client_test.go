package posts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "jsonplaceholder.typicode.com" {
		t.Fatalf("host = %q, want jsonplaceholder.typicode.com", u.Host)
	}
	if u.Path != "/" {
		t.Fatalf("path = %q, want /", u.Path)
	}

	u, err = parseBaseURL("http://example.com:1234/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("example.org")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.org" {
		t.Fatalf("bare host parsed as %q, want https://example.org/", u.String())
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_FetchPostsPreservesServerOrder(t *testing.T) {
	t.Parallel()

	var gotPath, gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"userId": 1, "id": 2, "title": "zeta", "body": "last letter"},
  {"userId": 1, "id": 1, "title": "alpha", "body": "first letter"},
  {"id": 3, "title": "", "body": ""}
]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.FetchPosts(ctx)
	if err != nil {
		t.Fatalf("FetchPosts returned error: %v", err)
	}
	want := []Post{
		{Title: "zeta", Body: "last letter"},
		{Title: "alpha", Body: "first letter"},
		{Title: "", Body: ""},
	}
	if len(got) != len(want) {
		t.Fatalf("FetchPosts len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FetchPosts[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}

	if gotPath != "/posts" {
		t.Fatalf("path = %q, want /posts", gotPath)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "postboard/") {
		t.Fatalf("User-Agent = %q, want postboard/*", gotUserAgent)
	}
}

func TestClient_FetchPostsUnderPathPrefix(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/v1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchPosts(context.Background()); err != nil {
		t.Fatalf("FetchPosts returned error: %v", err)
	}
	if gotPath != "/v1/posts" {
		t.Fatalf("path = %q, want /v1/posts", gotPath)
	}
}

func TestClient_NullBodyYieldsEmptyList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	got, err := c.FetchPosts(context.Background())
	if err != nil {
		t.Fatalf("FetchPosts returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("FetchPosts = %#v, want empty non-nil slice", got)
	}
}

func TestClient_FailuresCollapseToFetchError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			},
			want: "returned status 500",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			want: "returned status 404",
		},
		{
			name: "decode",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not-json"))
			},
			want: "decode response",
		},
		{
			name: "wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"title":"object, not array"}`))
			},
			want: "decode response",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tc.handler)
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			_, err = c.FetchPosts(context.Background())
			if err == nil {
				t.Fatalf("FetchPosts returned nil error, want %q", tc.want)
			}
			if !IsFetchError(err) {
				t.Fatalf("FetchPosts error = %T, want *FetchError", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("FetchPosts error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestClient_ConnectionFailureIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchPosts(context.Background())
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("FetchPosts error = %v, want *FetchError", err)
	}
	if fetchErr.Err == nil {
		t.Fatalf("FetchError.Err = nil, want underlying cause")
	}
	if !strings.Contains(fetchErr.Message, "execute request") {
		t.Fatalf("FetchError.Message = %q, want execute request failure", fetchErr.Message)
	}
}

func TestClient_OneRequestPerCall(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchPosts(context.Background()); err == nil {
		t.Fatalf("FetchPosts returned nil error, want 503 failure")
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("server hits = %d, want exactly 1 (no retry)", got)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.FetchPosts(ctx)
	if !IsFetchError(err) {
		t.Fatalf("FetchPosts error = %v, want *FetchError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("FetchPosts error = %v, want it to wrap context.DeadlineExceeded", err)
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if _, err := c.FetchPosts(context.Background()); !IsFetchError(err) {
		t.Fatalf("nil client FetchPosts error = %v, want *FetchError", err)
	}
	if c.BaseURL() != "" {
		t.Fatalf("nil client BaseURL = %q, want empty", c.BaseURL())
	}
}
