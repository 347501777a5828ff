package nodetype

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Object is one JSON object of a node document. Values are kept raw so
// each variant decodes only the keys it owns.
type Object map[string]json.RawMessage

// Set encodes v under key.
func (o Object) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	o[key] = data
	return nil
}

// Get decodes the value under key into v. It reports false, leaving v
// untouched, when the key is absent or null.
func (o Object) Get(key string, v any) (bool, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, errors.Wrapf(err, "decoding %q", key)
	}
	return true, nil
}

func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}
