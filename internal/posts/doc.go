// Package posts provides the HTTP client for the remote posts endpoint.
//
// # Overview
//
// The package exposes a single capability, fetching the full list of posts:
//
//	client, err := posts.NewClient("https://jsonplaceholder.typicode.com")
//	if err != nil {
//		return err
//	}
//	list, err := client.FetchPosts(ctx)
//
// Consumers depend on the Source interface rather than *Client so a fake can
// stand in during tests.
//
// # Request Handling
//
// FetchPosts issues exactly one GET <base>/posts per call:
//   - Uses the caller's context for cancellation
//   - Sets Accept: application/json and User-Agent: postboard/0.1
//   - Has a fixed 10 second client timeout
//   - Never retries
//
// The response must be a JSON array of objects. Only the title and body
// fields are kept; id, userId and anything else are dropped. Order is the
// server's order.
//
// # Error Handling
//
// Every failure mode (bad request, connection refused, timeout, non-2xx
// status, malformed JSON) is returned as a *FetchError. Its Message is the
// text shown to the user and Unwrap exposes the cause for errors.Is checks.
// ErrorMessage turns any error into display text, using "Unknown error" when
// nothing better is available.
package posts
