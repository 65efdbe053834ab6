// Package kernel provides the value objects shared by every aggregate of the
// fulfillment engine.
//
// The package includes:
//   - GeoPoint: a validated (latitude, longitude) pair with great-circle distance
//   - PickupWindow: the customer selected pickup start/end instants, kept in UTC
//   - Actor: the authenticated principal (customer or operator) acting on an order
//   - Clock: the time source injected into command handlers
//
// Value objects embed guard.ConstructorGuard, so their zero values fail validation.
// They are immutable and safe for concurrent use.
package kernel
