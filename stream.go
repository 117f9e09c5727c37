package formdata

import "io"

// Encoder writes url-encoded form data to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode flattens v with the url-encoded formatter and writes the resulting
// query string ("name=value&...", no leading "?") to the underlying
// [io.Writer].
func (e *Encoder) Encode(v interface{}) error {
	payload, err := Create(v, URLEncodedFormat, nil)
	if err != nil {
		return err
	}

	_, err = io.WriteString(e.w, queryString(payload.(FormBody).Form))
	return err
}
