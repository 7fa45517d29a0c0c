// Package services provides domain services for the jewelry back office.
//
// The package includes:
//   - OrderNumberAllocator: derives the next sequential ORD### identifier
//     from the greatest number issued so far, degrading to a
//     timestamp-derived fallback when the stored history cannot be parsed
//
// Domain services hold policy that does not belong to a single aggregate.
// The allocator is deliberately pure: the transactional read of the current
// maximum and the at-most-once guard per estimate live with its callers.
package services
