// Package routecache persists route results in SQLite so repeated runs over
// an unchanged map skip the search.
//
// Entries are keyed by Key, a SHA-256 digest of the raw map document and
// every option that can change the chosen route. The cache never checks a
// stored route against the map; a changed map simply produces a new key.
//
// The store uses the pure-Go modernc.org/sqlite driver. Pass ":memory:" to
// Open for a throwaway in-process cache.
package routecache
