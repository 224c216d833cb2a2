// Package ui provides the Bubble Tea terminal interface for BookFlix.
//
// # Architecture Overview
//
// The Model is the view controller: it owns the current navigation mode,
// the fetched result set for non-home views, the home page's per-category
// rows, and the detail overlay selection. The library store and catalog
// client are injected; the Model never touches the network or disk itself.
//
// # Views
//
// Six navigation modes mirror the BookFlix pages:
//
//   - Home: featured book hero plus horizontal shelves (personal shelves
//     and one row per home category)
//   - Search: full-page results for a free-text query
//   - Category: full-page results for a subject
//   - WantIt / TBR / History: per-status projections of the library
//
// # Fetch ordering
//
// Catalog fetches run as Bubble Tea commands, so completions arrive as
// messages in arrival order, not request order. Two consequences are
// deliberate:
//
//   - The featured book is the first book of whichever home category row
//     arrives first with results, which is not necessarily the first
//     category requested.
//   - Search and category fetches carry a sequence number; a completion
//     whose number is not the latest issued is dropped, so a slow earlier
//     search can never overwrite a newer one.
//
// In-flight fetches are never cancelled; a superseded response is simply
// ignored on arrival.
package ui
