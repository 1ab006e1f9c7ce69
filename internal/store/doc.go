// Package store provides SQLite-backed durable key-value storage.
//
// It plays the role a browser's local storage plays for a web page: small
// string values under string keys, read once at startup and overwritten in
// full on every change. Each key carries a seq counter incremented on every
// write, which gives a logical write order without wall-clock time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// The schema version lives in PRAGMA user_version. Opening a database
// written by a newer schema fails instead of guessing.
package store
