// Package persist serializes the record store to disk and reads it back.
//
// Two codecs implement the same Codec interface:
//   - TextCodec: the line-oriented "<id> @ <path> @ <ACTUAL> @ <PREDICTED>" format
//   - SQLiteCodec: one row per review in a single SQLite table
//
// Neither codec stores review text. Only the source path is persisted and the
// engine re-reads the text from that path on reload, so an Entry is a Review
// minus its Text.
//
// Save always replaces the target wholesale. Load of a missing target returns
// ErrNoDatabase, which callers treat as "start empty", not as a failure. Any
// malformed record aborts the whole Load with a *review.CorruptRecordError.
package persist
