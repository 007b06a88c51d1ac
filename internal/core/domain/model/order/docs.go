// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the customer, the worker once claimed,
//     the pickup and delivery window, the price and the cancellation fee
//   - Status: the ordered lifecycle with its successor table
//   - StatusChange: a pending OrderStatusHistory entry
//
// Key business rules:
//   - delivery_time must be after pickup_time and pickup_time must be in the
//     future when the order is created
//   - Status only moves forward one step at a time:
//     created -> claimed -> picked_up -> in_progress -> delivered -> completed
//   - Any non-terminal order may be cancelled, but only through Cancel and
//     only before its pickup time
//   - completed and cancelled are terminal
//   - The worker is set exactly once
//
// Every transition appends a StatusChange which the repository writes in the
// same transaction as the order itself.
package order
