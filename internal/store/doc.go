// Package store owns the ordered task sequence and its persistence
// round-trip.
//
// The store loads once at construction and writes the full sequence back
// to its backend after every mutation (write-through, no batching, no
// dirty-tracking). Both directions fail silently: missing or malformed
// stored bytes yield an empty sequence, and a failed write leaves the
// in-memory sequence authoritative for the rest of the session. Failures
// are logged, never returned.
//
// The store is not safe for concurrent use. One instance per session,
// driven synchronously by the presentation layer.
package store
