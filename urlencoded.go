package formdata

import "strings"

// Pair is a single name-value pair produced by the url-encoded formatter.
type Pair [2]string

// Name returns the pair's name.
func (p Pair) Name() string { return p[0] }

// Value returns the pair's value.
func (p Pair) Value() string { return p[1] }

// FormBody is the default url-encoded payload, intended for a request body.
type FormBody struct {
	Form []Pair
}

// QueryParams is the url-encoded payload produced under the "get" option,
// intended for GET request parameters.
type QueryParams struct {
	Params []Pair
}

type urlEncodedFormatter struct{}

// Format produces a plain name-value [Pair]. File leaves are always omitted:
// the url-encoded wire format has no representation for uploads. Leaves with
// an empty name or value are omitted too.
func (urlEncodedFormatter) Format(name, value string, file bool) interface{} {
	if file || name == "" || value == "" {
		return nil
	}
	return Pair{name, value}
}

// Output wraps the pairs according to the options: a literal "?name=value&..."
// string under "url" (empty input yields ""), a [QueryParams] under "get", and
// a [FormBody] otherwise.
//
// Values are joined verbatim; percent-escaping belongs to whatever HTTP layer
// consumes the payload.
func (urlEncodedFormatter) Output(units []interface{}, opts Options) (interface{}, error) {
	pairs := make([]Pair, 0, len(units))
	for _, u := range units {
		if p, ok := u.(Pair); ok {
			pairs = append(pairs, p)
		}
	}

	switch {
	case opts.Bool("url"):
		if len(pairs) == 0 {
			return "", nil
		}
		return "?" + queryString(pairs), nil
	case opts.Bool("get"):
		return QueryParams{Params: pairs}, nil
	default:
		return FormBody{Form: pairs}, nil
	}
}

func queryString(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(p[1])
	}
	return b.String()
}
