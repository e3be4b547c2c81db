// Package fixture serves a local stand-in for the posts API.
//
// NewHandler returns a gorilla/mux router answering GET /posts with a JSON
// array of posts. The response can be delayed to show the loading spinner,
// or replaced by a forced status to show the error line. Every request is
// tagged with an X-Request-ID and logged through slog.
//
// The postboard-fixture command runs it:
//
//	postboard-fixture -addr :8080 -delay 2s
//	postboard -base-url http://localhost:8080
package fixture
