// Package cart implements the shopping cart: an ordered sequence of
// catalog products persisted as a full snapshot after every mutation.
//
// # Invariants
//
//   - Entries keep add order; removing one never reorders the rest
//   - Duplicates are separate entries, there is no quantity field
//   - Total is recomputed from the entries on every call
//   - The snapshot in storage always equals the in-memory sequence: a
//     mutation is committed in memory only after its snapshot is written
//
// A Store is driven from a single event loop and is not safe for
// concurrent mutation.
package cart
