package formdata

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned by [ParseFormat] for an unknown format
// name.
var ErrUnsupportedFormat = errors.New("formdata: unsupported format")

// Format is the name of a built-in output format.
type Format string

const (
	Multipart  Format = "multipart"
	URLEncoded Format = "url_encoded"
)

var formats = []Format{Multipart, URLEncoded}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns the names of all built-in formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Formatter turns flattened leaves into a request-ready payload. Implement it
// to produce output shapes beyond the two built-in formats; the traversal in
// [Create] is unchanged regardless of the formatter in use.
type Formatter interface {
	// Format encodes one leaf. The name is the full bracketed name built
	// during traversal, the value is the rendered scalar or, when file is
	// true, a file-system path. A nil result omits the leaf from the
	// payload; the built-in formatters omit any leaf with an empty name or
	// empty value. Non-nil results are treated as opaque by the caller.
	Format(name, value string, file bool) interface{}

	// Output aggregates the surviving units, in traversal order, into the
	// final payload. It must tolerate an empty unit slice. The options map
	// carries formatter-specific flags and is never inspected by the
	// traversal.
	Output(units []interface{}, opts Options) (interface{}, error)
}

// Built-in formatter implementations, usable directly with [Create].
var (
	MultipartFormat  Formatter = multipartFormatter{}
	URLEncodedFormat Formatter = urlEncodedFormatter{}
)

// ParseFormat resolves a format name to its built-in [Formatter]. It
// recognizes the names listed by [Formats].
func ParseFormat(s string) (Formatter, error) {
	switch Format(s) {
	case Multipart:
		return MultipartFormat, nil
	case URLEncoded:
		return URLEncodedFormat, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options carries named flags through to [Formatter.Output]. The built-in
// url-encoded formatter recognizes "get" and "url"; unknown keys are ignored,
// leaving room for third-party formatters to define their own.
type Options map[string]interface{}

// Bool reports whether the option key is set to a true boolean.
func (o Options) Bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}
