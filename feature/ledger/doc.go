// Package ledger implements the transactional inventory adjuster.
//
// Borrow and Return move units between the hub_inv counters (available,
// borrowed) and append an audit trail, all inside one database transaction.
// Either every effect of an adjustment is visible or none is; a concurrent
// reader never observes a partial mutation.
//
// # Concurrency
//
// The availability check and the decrement are not two independent
// statements. The item row is read under a FOR UPDATE lock (to distinguish a
// missing item from an out-of-stock one) and the mutation itself is a single
// conditional UPDATE guarded by the counter it decrements. Two concurrent
// borrows against insufficient stock therefore resolve to exactly one success,
// regardless of the store's default isolation level.
//
// # Return guard
//
// Return refuses to drive the aggregate borrowed counter negative: the item
// update carries a qty_borrowed >= quantity guard and the whole unit of work
// fails with ErrExcessReturn when it does not hold. The per-request returned
// counter keeps its own bound and is skipped (not failed) when the increment
// would exceed the borrowed quantity.
package ledger
