// Package library implements the user's personal reading library: an
// ordered collection of status-tagged books keyed by book ID.
//
// The Store holds the collection in memory and writes the full serialized
// collection through its persistence Port after every mutation; the write
// happens synchronously in the same call as the mutation. Construction
// hydrates from the port exactly once, and any missing or malformed
// persisted data degrades to an empty library.
//
// Status is a closed enumeration. The legacy "My List" label from old
// persisted data is read as Want It and never written back.
package library
