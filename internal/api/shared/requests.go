package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies; every payload here is a few short fields.
const maxBodyBytes = 1 << 16

// DecodeJSON decodes the request body into the given struct.
// An empty body leaves v untouched so that missing fields surface as blank
// parameters rather than as a decoding failure.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Text is a request field that accepts either a JSON string or a JSON number
// and keeps the raw text, so numeric parsing and its error message stay with
// the service layer.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*t = ""
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*t = Text(n.String())
		return nil
	}
}

// String returns the raw text.
func (t Text) String() string {
	return string(t)
}
