// Package formdata flattens nested structures into an ordered sequence of
// name-value pairs suitable for multipart/form-data and
// application/x-www-form-urlencoded HTTP request bodies.
//
// HTTP form encodings are flat, whilst application data rarely is. This
// package bridges the gap with a deterministic, depth-first traversal that
// builds bracketed names (address[city], tags[]) and hands each leaf to a
// pluggable [Formatter], which decides how (and whether) the leaf appears in
// the final payload.
//
// # Input Shapes
//
// The value passed to [Create] must be record-like: a [Record], a string-keyed
// map, a struct (or struct pointer), or a sequence of 2-element pairs. Any
// other top-level shape fails with [ErrInvalidShape]. Nested values may be
// records, sequences, [File] references, or arbitrary scalar leaves.
//
// Struct fields are controlled with the form tag, matching the usual encoding
// package conventions:
//
//	type Account struct {
//		Name    string `form:"name"`
//		Age     int    `form:"age,omitempty"`
//		Private string `form:"-"`
//	}
//
// Maps have no defined order, so their keys are listed in sorted order. Use a
// [Record] when the pair order in the output matters.
//
// # Formats
//
// Two formatters are built in. [URLEncodedFormat] produces plain name-value
// [Pair] values, wrapped according to the options: a [FormBody] by default, a
// [QueryParams] when opts["get"] is true, or a literal "?name=value&..."
// string when opts["url"] is true. [MultipartFormat] produces one [Part] per
// leaf with a form-data content disposition, distinguishing file parts from
// plain values.
//
// Use [ParseFormat] to resolve a format name, or supply any value
// implementing [Formatter] for third-party output shapes:
//
//	f, err := formdata.ParseFormat("url_encoded")
//	payload, err := formdata.Create(record, f, nil)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidShape] — the top-level value is not record-like
//   - [ErrUnsupportedFormat] — unknown format name
package formdata
