// Package yaml provides the YAML document reader.
package yaml

import (
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/objfactory/pkg/errors"
	"github.com/arthur-debert/objfactory/pkg/factory"
	"github.com/arthur-debert/objfactory/pkg/logging"
	"github.com/arthur-debert/objfactory/pkg/readers"
)

const ReaderName = "yaml"

// Reader decodes YAML documents into generic key/value form
type Reader struct {
	logger zerolog.Logger
}

// New creates a new YAML reader
func New() *Reader {
	logger := logging.GetLogger("readers.yaml")
	logger.Trace().Msg("created yaml reader")
	return &Reader{logger: logger}
}

// Format returns the format name of this reader
func (r *Reader) Format() string {
	return ReaderName
}

// Decode parses a YAML mapping into its top-level key/value form
func (r *Reader) Decode(data []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "cannot decode document as %s", ReaderName)
	}

	r.logger.Trace().Int("keys", len(out)).Msg("decoded document")
	return out, nil
}

var _ = factory.NewRegistration(readers.Formats, ReaderName, func() readers.Reader {
	return New()
})
