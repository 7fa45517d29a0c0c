// Package estimate provides domain entities and business logic for the
// estimate/order coordinator of the jewelry back office. It implements the
// Estimate aggregate root with its status state machine and the order-number
// value object.
//
// The package includes:
//   - Estimate: the aggregate root owning status transitions and the
//     at-most-once assignment of an order number
//   - Status: the closed set of estimate lifecycle states
//   - Source: the closed set of estimate origins (admin, salesman, customer)
//   - OrderNumber: the sequential ORD### identifier with its ordering rules
//     and the timestamp-derived degraded fallback
//
// Key business rules:
//   - customer-originated estimates are created as Ordered with an order
//     number assigned immediately; staff-originated estimates start Pending
//   - an order number is assigned at most once and is never cleared
//   - once an order number exists, no further status change is permitted
//   - a customer accepting a staff-originated estimate lands on Ordered with
//     numbering deferred to an explicit follow-up step
package estimate
