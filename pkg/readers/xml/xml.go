// Package xml provides the XML document reader.
package xml

import (
	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/objfactory/pkg/errors"
	"github.com/arthur-debert/objfactory/pkg/factory"
	"github.com/arthur-debert/objfactory/pkg/logging"
	"github.com/arthur-debert/objfactory/pkg/readers"
)

const ReaderName = "xml"

// Reader decodes XML documents into generic key/value form
type Reader struct {
	logger zerolog.Logger
}

// New creates a new XML reader
func New() *Reader {
	logger := logging.GetLogger("readers.xml")
	logger.Trace().Msg("created xml reader")
	return &Reader{logger: logger}
}

// Format returns the format name of this reader
func (r *Reader) Format() string {
	return ReaderName
}

// Decode parses an XML document. Each child of the root element becomes a
// key; leaf elements map to their text, elements with children map to a
// nested mapping. Repeated tags keep the first occurrence.
func (r *Reader) Decode(data []byte) (map[string]interface{}, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "cannot decode document as %s", ReaderName)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.Newf(errors.ErrDecode, "%s document has no root element", ReaderName)
	}

	out := elementMap(root)
	r.logger.Trace().Int("keys", len(out)).Msg("decoded document")
	return out, nil
}

func elementMap(el *etree.Element) map[string]interface{} {
	out := make(map[string]interface{})
	for _, child := range el.ChildElements() {
		if _, exists := out[child.Tag]; exists {
			continue
		}
		if len(child.ChildElements()) > 0 {
			out[child.Tag] = elementMap(child)
		} else {
			out[child.Tag] = child.Text()
		}
	}
	return out
}

var _ = factory.NewRegistration(readers.Formats, ReaderName, func() readers.Reader {
	return New()
})
