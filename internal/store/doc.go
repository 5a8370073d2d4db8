// Package store provides SQLite-backed storage for graph elements.
//
// Elements live in one table and their properties in another, one row per
// key. A property row carries the value's encoded bytes verbatim in a BLOB
// column, with the type tag duplicated in an INTEGER column so queries can
// select by kind without touching the payload. Reads hand the bytes back to
// property.FromRawBytes without decoding them.
//
// # Ordering
//
// Elements are returned in insertion order (ORDER BY seq). Properties of an
// element are returned in key order.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Unset values are never written: a key whose value is unset is absent
// after a round trip.
package store
