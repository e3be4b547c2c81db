// Package app provides the orchestration layer for postboard.
//
// # Overview
//
// This package wires together configuration, logging, preferences, the
// posts client and the UI. It is the composition root where every
// dependency is created and connected.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml (defaults if missing)
//	       ├─────> cfg.WithBaseURL()    Apply -base-url override
//	       ├─────> posts.NewClient()    HTTP client for GET /posts
//	       ├─────> logging.New()        JSON log file
//	       ├─────> prefs.Load()         Saved theme
//	       └─────> ui.Run()             Start TUI (blocks)
//
// The posts request itself is issued by the list screen once the UI is up,
// so startup never waits on the network.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable, unparseable or invalid
//   - Invalid -base-url override
//   - Terminal program failure
//
// Degraded, logged and ignored:
//   - Log file cannot be opened (logging is discarded, a note goes to stderr)
//   - Preferences unreadable (default theme)
//
// Fetch failures are not errors at this level; the list screen shows them.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{BaseURL: "http://localhost:8080"}); err != nil {
//		log.Fatalf("postboard failed: %v", err)
//	}
package app
