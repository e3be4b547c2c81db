// Package nav implements the two-screen navigation used by the UI: a list
// screen at the root and a detail screen pushed on selection.
//
// Detail routes are addressed as postDetail/{title}/{body}. Both segments
// are percent-encoded on the way out and decoded on the way in, so titles
// and bodies containing "/", "?", "%" or arbitrary unicode survive the trip.
// The route carries the post's text by value; nothing is looked up again.
package nav
