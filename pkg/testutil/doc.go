// Package testutil provides assertion helpers for testing objfactory
// components.
//
// The helpers are thin wrappers over the standard testing package; tests
// that need richer matchers use testify directly.
package testutil
