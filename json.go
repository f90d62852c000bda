package docshift

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Marshalers returns the marshalers encoding D as a JSON object in entry
// order. Arrays and scalars need no custom logic; A marshals elementwise and
// nested D values inside it pick up the document marshaler through the
// encoder's options.
func Marshalers() *json.Marshalers {
	return json.MarshalToFunc(func(enc *jsontext.Encoder, doc D) error {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return fmt.Errorf("write object open: %w", err)
		}
		for _, e := range doc {
			if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
				return fmt.Errorf("write object key %q: %w", e.Key, err)
			}
			if err := json.MarshalEncode(enc, e.Value); err != nil {
				return fmt.Errorf("write object value for key %q: %w", e.Key, err)
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return fmt.Errorf("write object close: %w", err)
		}
		return nil
	})
}

// ToJSON encodes a document as JSON, mapping entries in document order.
func ToJSON(doc any) (string, error) {
	b, err := json.Marshal(doc, json.WithMarshalers(Marshalers()))
	if err != nil {
		return "", fmt.Errorf("encode json document: %w", err)
	}
	return string(b), nil
}
