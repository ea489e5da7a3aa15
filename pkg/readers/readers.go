package readers

import (
	"sort"

	"github.com/arthur-debert/objfactory/pkg/factory"
)

// Reader decodes a serialized document into generic key/value form.
// Implementations are cheap to construct and hold no shared state, so a
// fresh instance is created per use.
type Reader interface {
	// Format returns the format name the reader was registered under
	Format() string

	// Decode parses data and returns its top-level key/value mapping
	Decode(data []byte) (map[string]interface{}, error)
}

// Formats is the process-wide reader factory, keyed by format name.
// It is initialized here, before any package init runs, so registration
// tokens in the format subpackages can rely on it during their own
// initialization. All registration must finish at import time.
var Formats = factory.New[string, Reader]()

// Get creates a fresh Reader for the given format name.
// Unknown formats fail with errors.ErrNotFound.
func Get(format string) (Reader, error) {
	return Formats.Create(format)
}

// List returns the registered format names in sorted order.
func List() []string {
	names := Formats.Keys()
	sort.Strings(names)
	return names
}

// Decode is a convenience that creates the reader for format and decodes
// data with it in one call.
func Decode(format string, data []byte) (map[string]interface{}, error) {
	reader, err := Get(format)
	if err != nil {
		return nil, err
	}
	return reader.Decode(data)
}
