package factory

// Registration records that one key/constructor pair was added to a Factory.
// Constructing a Registration performs the Register call as a side effect,
// which is its whole purpose: declaring one package-level Registration per
// concrete type makes importing the package sufficient to register it.
//
//	var _ = factory.NewRegistration(readers.Formats, "json", newJSONReader)
//
// Package-level variables are initialized before init functions and in the
// defined package import order, so the registration phase is deterministic.
type Registration[K comparable] struct {
	// Key is the key the registration was declared for. It is retained for
	// diagnostics only; the token has no further use after construction.
	Key K
}

// NewRegistration registers ctor under key on f and returns the token.
func NewRegistration[K comparable, T any](f *Factory[K, T], key K, ctor Constructor[T]) Registration[K] {
	f.Register(key, ctor)
	return Registration[K]{Key: key}
}

// NewTypeRegistration registers a fresh-allocation constructor for C under
// key on f and returns the token. It is the token form of RegisterNew.
func NewTypeRegistration[C any, K comparable, T any](f *Factory[K, T], key K) Registration[K] {
	RegisterNew[C](f, key)
	return Registration[K]{Key: key}
}
