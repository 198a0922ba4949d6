// Package store provides persistence for the user's school selection.
//
// It contains concrete implementations of domain.SelectionStore, a small
// string key/value contract. All methods are concurrency-safe via internal
// locking. The file-backed store lives under the user's configured home
// directory.
//
// The package includes:
//   - FileStore: a checksummed JSON document written atomically
//   - SQLiteStore: a key/value table in a SQLite database
//   - MemoryStore: an in-process map for tests and ephemeral runs
//
// LoadSelection and SaveSelection read and write the (id, name) pair on top
// of any of them.
package store
