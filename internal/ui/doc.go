// Package ui provides the postboard terminal interface built on Bubble Tea.
//
// # Screens
//
// Two screens share one Model, switched by a nav.Router:
//
//   - List: a "Search by title" field above a scrollable column of post
//     cards. Each card shows a pin marker and the title, then a two line
//     preview of the body. A spinner stands in for the cards while the
//     fetch is pending and a single "Error: <message>" line replaces them
//     if it fails.
//   - Detail: a "Post Detail" header over a viewport holding the full
//     title and body.
//
// The list screen and its state.Controller stay mounted while a detail
// screen is open, so going back restores the query, the cursor and the
// loaded posts without another request.
//
// # Data Flow
//
//  1. New creates the controller in the Loading phase
//  2. Init starts the spinner and runs Controller.Load as a tea.Cmd
//  3. Load applies its result to the controller, then postsLoadedMsg
//     triggers a redraw
//  4. Typing in the search field calls Controller.SetQuery; the list is
//     re-filtered on every render
//  5. Run tears the controller down on exit, cancelling a pending fetch
//
// # Key Bindings
//
//   - /: focus search; enter or esc leaves it
//   - j/k, arrows, g/G, pgup/pgdown: move through cards or scroll detail
//   - enter: open the highlighted post
//   - esc, backspace, b: back to the list
//   - T: cycle theme (saved to prefs.toml)
//   - ?: toggle help
//   - q, ctrl+c: quit
//
// # Themes
//
// Nightfox (default), Kanagawa and Slate. Unknown names fall back to
// Nightfox.
package ui
