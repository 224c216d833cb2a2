// Package openlibrary provides the catalog client and book normalizer for
// BookFlix.
//
// # Overview
//
// The package wraps the public Open Library search API behind two read-only
// queries: free-text search and subject listing. Raw search docs are dynamic
// payloads with no guaranteed fields, so every record passes through
// Normalize, which defaults missing data and computes a cover image URL.
//
// # Fail-soft contract
//
// Search and BySubject never return an error. Any transport failure,
// non-success HTTP status, or decode failure is logged and converted into an
// empty result list so the UI always has something to render. Callers that
// need to distinguish "no results" from "catalog unreachable" should not use
// this package.
//
// # Normalization rules
//
//   - Authors defaults to ["Unknown Author"] when absent.
//   - Description is the first sentence blurb when the catalog provides one.
//   - Subjects are truncated to the first five entries.
//   - CoverURL is {covers-host}/{cover_i}-L.jpg, or a fixed placeholder when
//     the record has no cover. It is never empty.
//
// Books without cover art are filtered out of query results after
// normalization; the placeholder only appears for books that entered the
// library before their cover was withdrawn upstream.
package openlibrary
