// Package factory provides a generic, keyed object factory. Independent
// packages register constructors for concrete implementations of an abstract
// capability under a lookup key, and consuming code later creates fresh
// instances purely from that key, without depending on the concrete types.
//
// Registration is expected to complete during package initialization, before
// any concurrent access begins; see Factory for the exact contract. Concrete
// implementations typically register themselves with a package-level
// Registration token so that importing the package is enough to make them
// available.
package factory
