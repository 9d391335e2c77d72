// Package store provides the in-process record store for classified reviews.
//
// The store maps review id to Review behind a single RWMutex. Records are
// immutable once inserted, so the one lock boundary is all the
// synchronization concurrent ingestion workers need:
//   - Insert is linearizable with other inserts and with reads
//   - Readers never observe a partially written Review
//   - Query results come back in insertion order, stable within a call
//
// The store does not issue ids. Ids come from the engine's sequence and are
// assigned when a source file is read, before insertion.
package store
