// Package engine implements the critic ingestion and classification engine.
//
// The engine owns the record store, the lexicon and the id sequence. The
// presentation layer only observes the store through engine operations.
//
// ARCHITECTURE:
//
// Ingestion:
// Load accepts a single review file or a directory. A single file is read,
// classified and inserted on the caller's goroutine. A directory is fanned
// out over a bounded worker Pool, one task per matching entry, and Load
// blocks until every task has finished. There is no cancellation: once a
// batch is dispatched it runs to completion.
//
// Per-file flow: read text -> issue id -> classify -> insert.
// The id is issued only after the file was read successfully, and the
// review is inserted only after its prediction is set, so queries never see
// an unclassified review.
//
// Shared state:
//   - Store: one RWMutex around the whole map (see package store)
//   - Sequence: atomic counter, exposed only as Next/Peek/AdvancePast
//   - Lexicon: read-only after startup, no synchronization
//
// Persistence:
// SaveDatabase writes every review (id order) through the configured codec.
// ReloadDatabase decodes the entries, re-reads each text from its source
// path, then swaps the store contents in one step. A failed reload leaves
// the store and the sequence untouched.
package engine
