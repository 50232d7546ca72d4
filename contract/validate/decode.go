package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const maxDepth = 64

// decoded is a payload decoded with objects as map[string]any and numbers as
// json.Number. Duplicate keys are remembered rather than silently collapsed.
type decoded struct {
	value any
	// dupTag is a top-level key that occurs more than once.
	dupTag string
	// dupField is the first repeated key below the top level, as a
	// dotted path starting at the variant tag.
	dupField string
}

type decoder struct {
	dec *json.Decoder
	out decoded
}

func decode(payload json.RawMessage) (*decoded, error) {
	d := &decoder{dec: json.NewDecoder(bytes.NewReader(payload))}
	d.dec.UseNumber()

	v, err := d.value("", 0)
	if err != nil {
		return nil, err
	}
	if _, err := d.dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return nil, err
	}
	d.out.value = v
	return &d.out, nil
}

func (d *decoder) value(path string, depth int) (any, error) {
	tok, err := d.dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	if depth >= maxDepth {
		return nil, fmt.Errorf("nesting deeper than %d levels", maxDepth)
	}
	switch delim {
	case '{':
		return d.object(path, depth+1)
	case '[':
		return d.array(path, depth+1)
	}
	return nil, fmt.Errorf("unexpected %q", delim)
}

func (d *decoder) object(path string, depth int) (map[string]any, error) {
	obj := make(map[string]any)
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}

		kp := join(path, key)
		v, err := d.value(kp, depth)
		if err != nil {
			return nil, err
		}
		if _, dup := obj[key]; dup {
			switch {
			case depth == 1 && d.out.dupTag == "":
				d.out.dupTag = key
			case depth > 1 && d.out.dupField == "":
				d.out.dupField = kp
			}
		}
		obj[key] = v
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func (d *decoder) array(path string, depth int) ([]any, error) {
	arr := []any{}
	for d.dec.More() {
		v, err := d.value(fmt.Sprintf("%s[%d]", path, len(arr)), depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
