// Package sessionstore persists the single user-session record of the
// storefront client.
//
// The record is the JSON form of models.UserSession stored under one fixed,
// namespaced key (DefaultKey). Backends:
//
//   - SQLiteStore: a key/value table in a local SQLite file, created by
//     embedded goose migrations (see OpenSQLite).
//   - RedisStore: a plain Redis string key.
//   - MemoryStore: process-local, for demos and tests.
//
// Load reports ErrNoSession when nothing is stored and ErrMalformedRecord
// when the stored bytes do not decode to a well-formed session. Callers are
// expected to treat both (and any other error) as "no session".
package sessionstore
