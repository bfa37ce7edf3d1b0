// Package kernel contains the shared value objects of the storefront domain:
// entity identifiers and geographic coordinates. Types here are immutable,
// created only through validating constructors, and carry no behavior beyond
// what every aggregate needs.
package kernel
