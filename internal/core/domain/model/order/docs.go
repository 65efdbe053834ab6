// Package order provides the Order aggregate of the fulfillment engine: a customer
// booking assigned to one fulfillment location, its line items and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root with delivery address snapshot, pickup window and milestones
//   - Item: one booked service with quantity and optional total override
//   - Status: the lifecycle graph and the once-only milestone stamps
//   - ApplyTransition: the pure function that moves an order along the graph
//
// Key business rules:
//   - An order owns at least one item when it is created
//   - The assigned location never changes after creation
//   - Every milestone stamp is written only the first time its status is reached
//   - Customers may cancel or reschedule only while the order is pending or confirmed
//   - Items can be edited until the order is delivered or cancelled
package order
