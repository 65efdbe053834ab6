// Package services provides domain services that span several aggregates of the
// fulfillment engine.
//
// The package includes:
//   - GeoMatcher: picks the nearest eligible location for a booking coordinate
//   - PricingResolver: reconciles operator item edits against the catalog
//   - StatusMachine: authorizes and applies lifecycle changes to an order
//
// Services are stateless and pure: they never touch storage, so command handlers
// run them inside their own transactions.
package services
