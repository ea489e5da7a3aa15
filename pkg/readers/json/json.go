// Package json provides the JSON document reader.
package json

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/objfactory/pkg/errors"
	"github.com/arthur-debert/objfactory/pkg/factory"
	"github.com/arthur-debert/objfactory/pkg/logging"
	"github.com/arthur-debert/objfactory/pkg/readers"
)

const ReaderName = "json"

// Reader decodes JSON documents into generic key/value form
type Reader struct {
	logger zerolog.Logger
}

// New creates a new JSON reader
func New() *Reader {
	logger := logging.GetLogger("readers.json")
	logger.Trace().Msg("created json reader")
	return &Reader{logger: logger}
}

// Format returns the format name of this reader
func (r *Reader) Format() string {
	return ReaderName
}

// Decode parses a JSON object into its top-level key/value mapping
func (r *Reader) Decode(data []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "cannot decode document as %s", ReaderName)
	}

	r.logger.Trace().Int("keys", len(out)).Msg("decoded document")
	return out, nil
}

var _ = factory.NewRegistration(readers.Formats, ReaderName, func() readers.Reader {
	return New()
})
