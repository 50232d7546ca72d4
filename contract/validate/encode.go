package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// canonicalEncoder writes normalized values compactly, in map insertion
// order, without HTML-escaping strings.
type canonicalEncoder struct {
	buf bytes.Buffer
	str *json.Encoder
}

func encodeCanonical(v any) ([]byte, error) {
	e := &canonicalEncoder{}
	e.str = json.NewEncoder(&e.buf)
	e.str.SetEscapeHTML(false)
	if err := e.encode(v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

func (e *canonicalEncoder) encode(v any) error {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case bool:
		e.buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		e.buf.WriteString(t.String())
	case string:
		return e.string(t)
	case []any:
		e.buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.encode(item); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	case *orderedmap.OrderedMap[string, any]:
		e.buf.WriteByte('{')
		for p := t.Oldest(); p != nil; p = p.Next() {
			if p != t.Oldest() {
				e.buf.WriteByte(',')
			}
			if err := e.string(p.Key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if err := e.encode(p.Value); err != nil {
				return err
			}
		}
		e.buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}

// string writes s as a JSON string. Encoder.Encode appends a newline.
func (e *canonicalEncoder) string(s string) error {
	if err := e.str.Encode(s); err != nil {
		return err
	}
	e.buf.Truncate(e.buf.Len() - 1)
	return nil
}
