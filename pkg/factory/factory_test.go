// pkg/factory/factory_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test factory registration, creation, and duplicate-key policy

package factory

import (
	"sort"
	"testing"

	"github.com/arthur-debert/objfactory/pkg/errors"
)

// Widget is a simple abstract capability for testing
type Widget interface {
	Kind() string
}

type gear struct{ teeth int }

func (g *gear) Kind() string { return "gear" }

type lever struct{}

func (l *lever) Kind() string { return "lever" }

func newGear() Widget { return &gear{teeth: 12} }

func TestNew(t *testing.T) {
	f := New[string, Widget]()

	if f == nil {
		t.Fatal("New() returned nil")
	}

	if f.Count() != 0 {
		t.Errorf("new factory should be empty, got count %d", f.Count())
	}
}

func TestRegisterAndCreate(t *testing.T) {
	f := New[string, Widget]()
	f.Register("gear", newGear)

	got, err := f.Create("gear")
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}

	if got.Kind() != "gear" {
		t.Errorf("Create() kind = %q, want %q", got.Kind(), "gear")
	}
}

func TestCreateReturnsDistinctInstances(t *testing.T) {
	f := New[string, Widget]()
	f.Register("gear", newGear)

	first, err := f.Create("gear")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := f.Create("gear")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first == second {
		t.Error("Create() should allocate a fresh instance on every call")
	}
}

func TestCreateUnknownKey(t *testing.T) {
	f := New[string, Widget]()

	_, err := f.Create("csv")
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Create() unknown key should return ErrNotFound, got %v", err)
	}

	// The offending key is carried in the message for diagnostics.
	if got := err.Error(); got != "[NOT_FOUND] factory key 'csv' not found" {
		t.Errorf("Create() error = %q", got)
	}
}

func TestRegisterDuplicateFirstWins(t *testing.T) {
	f := New[string, Widget]()
	f.Register("w", newGear)
	f.Register("w", func() Widget { return &lever{} })

	got, err := f.Create("w")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got.Kind() != "gear" {
		t.Errorf("duplicate registration should be ignored, Create() kind = %q, want %q", got.Kind(), "gear")
	}

	if f.Count() != 1 {
		t.Errorf("Count() = %d, want 1", f.Count())
	}
}

func TestRegisterNilConstructorIgnored(t *testing.T) {
	f := New[string, Widget]()
	f.Register("w", nil)

	if f.IsRegistered("w") {
		t.Error("nil constructor should not be registered")
	}
}

func TestIsRegistered(t *testing.T) {
	f := New[string, Widget]()

	if f.IsRegistered("gear") {
		t.Error("IsRegistered() = true before registration")
	}

	f.Register("gear", newGear)

	if !f.IsRegistered("gear") {
		t.Error("IsRegistered() = false after registration")
	}
}

func TestMustCreate(t *testing.T) {
	f := New[string, Widget]()
	f.Register("gear", newGear)

	if got := f.MustCreate("gear"); got.Kind() != "gear" {
		t.Errorf("MustCreate() kind = %q, want %q", got.Kind(), "gear")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCreate() should panic for unknown key")
		}
	}()
	f.MustCreate("missing")
}

func TestConstructors(t *testing.T) {
	f := New[string, Widget]()
	f.Register("a", newGear)
	f.Register("b", newGear)
	f.Register("c", newGear)

	view := f.Constructors()
	if len(view) != 3 {
		t.Fatalf("Constructors() len = %d, want 3", len(view))
	}
	for _, key := range []string{"a", "b", "c"} {
		if view[key] == nil {
			t.Errorf("Constructors() missing key %q", key)
		}
	}

	// The view is a copy; mutating it must not affect the factory.
	delete(view, "a")
	view["d"] = newGear
	if !f.IsRegistered("a") {
		t.Error("mutating the view removed a registration")
	}
	if f.IsRegistered("d") {
		t.Error("mutating the view added a registration")
	}
}

func TestKeysAndCount(t *testing.T) {
	f := New[string, Widget]()
	f.Register("b", newGear)
	f.Register("a", newGear)
	f.Register("c", newGear)

	keys := f.Keys()
	sort.Strings(keys)
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() len = %d, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if f.Count() != 3 {
		t.Errorf("Count() = %d, want 3", f.Count())
	}
}

func TestIndependentFactoriesShareNoState(t *testing.T) {
	widgets := New[string, Widget]()
	numbered := New[int, Widget]()

	widgets.Register("x", newGear)

	if numbered.IsRegistered(0) || numbered.Count() != 0 {
		t.Error("registrations leaked between independent factories")
	}

	other := New[string, Widget]()
	if other.IsRegistered("x") {
		t.Error("two string-keyed factories should not share state")
	}
}

func TestNonStringKeys(t *testing.T) {
	type phase int
	const (
		phaseSolid phase = iota
		phaseLiquid
	)

	f := New[phase, Widget]()
	f.Register(phaseSolid, newGear)

	if !f.IsRegistered(phaseSolid) {
		t.Error("IsRegistered(phaseSolid) = false")
	}
	if f.IsRegistered(phaseLiquid) {
		t.Error("IsRegistered(phaseLiquid) = true")
	}

	_, err := f.Create(phaseLiquid)
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Create() unknown enum key should return ErrNotFound, got %v", err)
	}
}

func TestRegisterNew(t *testing.T) {
	f := New[string, Widget]()
	RegisterNew[gear](f, "gear")

	got, err := f.Create("gear")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, ok := got.(*gear); !ok {
		t.Errorf("RegisterNew should allocate the concrete type, got %T", got)
	}

	// Instances are still distinct per call.
	other, _ := f.Create("gear")
	if got == other {
		t.Error("RegisterNew constructor should allocate a fresh instance per Create")
	}
}

func TestNewOf(t *testing.T) {
	ctor := NewOf[Widget, lever]()

	v := ctor()
	if _, ok := v.(*lever); !ok {
		t.Errorf("NewOf constructor returned %T, want *lever", v)
	}
}
