package docshift

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns the set of docshift unmarshalers allowing decoding
// into:
//   - any/interface{} -> objects as D, arrays as A
//   - *D              -> direct ordered object decoding
//   - *A              -> direct array decoding
//
// Stock decoding of a JSON object into interface{} produces a
// map[string]any, which loses key order; these unmarshalers are what keeps
// the ordered-mapping invariant intact for documents loaded from JSON.
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalValue(),
		unmarshalDocument(),
		unmarshalSequence(),
	)
}

// FromJSON decodes data into a document: objects as D (ordered), arrays as
// A, primitives as their scalar kinds. This is the JSON-side input adapter
// feeding the projectors.
func FromJSON(data []byte) (any, error) {
	var out any
	if err := json.Unmarshal(data, &out, json.WithUnmarshalers(Unmarshalers())); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	return out, nil
}

// unmarshalValue wraps JSON objects as D and arrays as A when decoding into
// interface{}. Primitive values (string, number, bool, null) are left to the
// default logic by returning json.SkipFunc. Empty objects ({}) produce an
// empty D; empty arrays ([]) produce an empty A.
func unmarshalValue() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			doc, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = doc
			return nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// unmarshalDocument provides decoding of a JSON object into a *D when the
// target type is *D (ordered key preservation).
func unmarshalDocument() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *D) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		doc, err := decodeObject(dec)
		if err != nil {
			return err
		}
		*v = doc
		return nil
	})
}

// unmarshalSequence provides decoding of a JSON array into an *A when the
// target type is *A.
func unmarshalSequence() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *A) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		arr, err := decodeArray(dec)
		if err != nil {
			return err
		}
		*v = arr
		return nil
	})
}

// decodeObject decodes a JSON object into a D, preserving member order.
func decodeObject(dec *jsontext.Decoder) (D, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	doc := D{}
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", k, err)
		}
		doc = append(doc, E{Key: k, Value: v})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return doc, nil
}

// decodeArray decodes a JSON array into A.
func decodeArray(dec *jsontext.Decoder) (A, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := A{}
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}
