// Package toml provides the TOML document reader.
package toml

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/objfactory/pkg/errors"
	"github.com/arthur-debert/objfactory/pkg/factory"
	"github.com/arthur-debert/objfactory/pkg/logging"
	"github.com/arthur-debert/objfactory/pkg/readers"
)

const ReaderName = "toml"

// Reader decodes TOML documents into generic key/value form
type Reader struct {
	logger zerolog.Logger
}

// New creates a new TOML reader
func New() *Reader {
	logger := logging.GetLogger("readers.toml")
	logger.Trace().Msg("created toml reader")
	return &Reader{logger: logger}
}

// Format returns the format name of this reader
func (r *Reader) Format() string {
	return ReaderName
}

// Decode parses a TOML document into its top-level key/value form
func (r *Reader) Decode(data []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "cannot decode document as %s", ReaderName)
	}

	r.logger.Trace().Int("keys", len(out)).Msg("decoded document")
	return out, nil
}

var _ = factory.NewRegistration(readers.Formats, ReaderName, func() readers.Reader {
	return New()
})
