package factory

import (
	"fmt"
	"maps"

	"github.com/arthur-debert/objfactory/pkg/errors"
)

// Constructor produces a new, independently owned instance of T.
// It must not retain or share state between calls.
type Constructor[T any] func() T

// Factory maps keys to constructors for one abstract type T.
//
// A Factory performs no internal locking. All registration must complete
// during program startup (package init is the intended phase); after that,
// Create, IsRegistered and the enumeration methods may be called from
// multiple goroutines as long as no Register call is in flight.
type Factory[K comparable, T any] struct {
	constructors map[K]Constructor[T]
}

// New creates an empty Factory for key type K and abstract type T.
func New[K comparable, T any]() *Factory[K, T] {
	return &Factory[K, T]{
		constructors: make(map[K]Constructor[T]),
	}
}

// Register associates key with a constructor. Registration is
// insert-if-absent: the first constructor registered for a key wins, and
// later registrations for the same key are silently ignored. A nil
// constructor is also ignored. Register never fails.
//
// The first-wins policy mirrors associative-map insert semantics rather than
// assignment; callers that need to detect key collisions across packages can
// probe with IsRegistered before registering.
func (f *Factory[K, T]) Register(key K, ctor Constructor[T]) {
	if ctor == nil {
		return
	}
	if _, exists := f.constructors[key]; exists {
		return
	}
	f.constructors[key] = ctor
}

// Create looks up key and invokes its constructor, returning the fresh
// instance. Every call returns a distinct instance; the factory keeps no
// reference to created values. An unregistered key fails with ErrNotFound
// carrying the stringified key.
func (f *Factory[K, T]) Create(key K) (T, error) {
	ctor, exists := f.constructors[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "factory key '%v' not found", key)
	}
	return ctor(), nil
}

// MustCreate is like Create but panics on an unregistered key.
// Useful when the key is known to be registered.
func (f *Factory[K, T]) MustCreate(key K) T {
	v, err := f.Create(key)
	if err != nil {
		panic(fmt.Sprintf("factory: %v", err))
	}
	return v
}

// IsRegistered reports whether a constructor exists for key.
func (f *Factory[K, T]) IsRegistered(key K) bool {
	_, exists := f.constructors[key]
	return exists
}

// Constructors returns a copy of the key to constructor mapping for
// diagnostics and introspection. Mutating the returned map has no effect
// on the factory.
func (f *Factory[K, T]) Constructors() map[K]Constructor[T] {
	return maps.Clone(f.constructors)
}

// Keys returns all registered keys. No ordering is guaranteed.
func (f *Factory[K, T]) Keys() []K {
	keys := make([]K, 0, len(f.constructors))
	for key := range f.constructors {
		keys = append(keys, key)
	}
	return keys
}

// Count returns the number of registered constructors.
func (f *Factory[K, T]) Count() int {
	return len(f.constructors)
}

// NewOf returns a Constructor that allocates a fresh C and returns it as T.
// The pointer type *C must satisfy T; the constraint is checked at the first
// invocation, not at registration.
func NewOf[T any, C any]() Constructor[T] {
	return func() T {
		return any(new(C)).(T)
	}
}

// RegisterNew registers a constructor that allocates a fresh C under key.
// It is the convenience form of Register for concrete types that need no
// construction arguments, equivalent to f.Register(key, NewOf[T, C]()).
func RegisterNew[C any, K comparable, T any](f *Factory[K, T], key K) {
	f.Register(key, NewOf[T, C]())
}
