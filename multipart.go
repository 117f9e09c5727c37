package formdata

import (
	"path/filepath"
	"strconv"
)

// FileKind marks a [Part] carrying a file path rather than a literal value.
const FileKind = "file"

// Param is a single disposition parameter.
type Param struct {
	Name  string
	Value string
}

// Disposition is the content disposition attached to a [Part].
type Disposition struct {
	Type   string
	Params []Param
}

// Part is one multipart unit. Kind is [FileKind] for file parts and empty for
// plain values; Payload is the literal value or the file path respectively.
// Extra is reserved for additional part headers.
type Part struct {
	Kind        string
	Payload     string
	Disposition Disposition
	Extra       []Param
}

type multipartFormatter struct{}

// Format wraps a leaf in a form-data disposition. The part name is quoted,
// and file parts additionally carry the quoted basename of the path as their
// filename. Leaves with an empty name or value are omitted.
func (multipartFormatter) Format(name, value string, file bool) interface{} {
	if name == "" || value == "" {
		return nil
	}

	kind := ""
	params := []Param{{Name: "name", Value: strconv.Quote(name)}}
	if file {
		kind = FileKind
		params = append(params, Param{Name: "filename", Value: strconv.Quote(filepath.Base(value))})
	}

	return Part{
		Kind:        kind,
		Payload:     value,
		Disposition: Disposition{Type: "form-data", Params: params},
		Extra:       []Param{},
	}
}

// Output returns the parts in traversal order. Writing boundaries around them
// is the transport's concern, not this package's.
func (multipartFormatter) Output(units []interface{}, _ Options) (interface{}, error) {
	parts := make([]Part, 0, len(units))
	for _, u := range units {
		if p, ok := u.(Part); ok {
			parts = append(parts, p)
		}
	}
	return parts, nil
}
