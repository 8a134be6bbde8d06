// Package order provides the Order aggregate of the bakery: what was ordered,
// by whom, for when, where it is picked up, and the audit ledger of every
// state change.
//
// The package includes:
//   - State: the closed set NEW, CONFIRMED, READY, PROBLEM, DELIVERED, CANCELLED
//   - Order: the aggregate root owning its Customer, Items and History
//   - HistoryItem: an immutable ledger entry (author, message, state, timestamp)
//   - Summary: the read-only view shared by full orders and projections
//
// Key business rules:
//   - A new order is NEW with a single "Order placed" entry
//   - Transition appends "Order <STATE>" only when the state actually changes
//   - TransitionStrict additionally enforces the lifecycle graph and never
//     leaves DELIVERED or CANCELLED
//   - The current state always equals the state of the last history entry
//   - Items are non-empty and reference distinct products
package order
