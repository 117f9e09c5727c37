package formdata_test

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomasbasham/formdata"
)

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns,omitempty"`
}

type User struct {
	Name    string  `form:"name"`
	Age     int     `form:"age,omitempty"`
	Address Address `form:"address"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
}

type MyDate time.Time

func (d MyDate) MarshalForm() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

var errBadDate = errors.New("bad date")

type badDate struct{}

func (badDate) MarshalForm() (string, error) {
	return "", errBadDate
}

// unit records one leaf handed to the formatter.
type unit struct {
	Name  string
	Value string
	File  bool
}

// recorder is a conforming formatter that keeps every leaf it accepts. It
// applies the standard omission predicate so that filtering behaviour is
// observable, and its Output returns the units untouched.
type recorder struct {
	calls int
}

func (r *recorder) Format(name, value string, file bool) interface{} {
	r.calls++
	if name == "" || value == "" {
		return nil
	}
	return unit{Name: name, Value: value, File: file}
}

func (r *recorder) Output(units []interface{}, _ formdata.Options) (interface{}, error) {
	return units, nil
}

// fixtureRecord parses a YAML mapping into a [formdata.Record], preserving
// the document's key order. yaml.Node keeps mapping entries in source order,
// which Go maps would not.
func fixtureRecord(t *testing.T, doc string) formdata.Record {
	t.Helper()

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		t.Fatalf("fixture must be a mapping document")
	}
	return nodeValue(root.Content[0]).(formdata.Record)
}

func nodeValue(n *yaml.Node) interface{} {
	switch n.Kind {
	case yaml.MappingNode:
		rec := make(formdata.Record, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			rec = append(rec, formdata.Field{
				Key:   n.Content[i].Value,
				Value: nodeValue(n.Content[i+1]),
			})
		}
		return rec
	case yaml.SequenceNode:
		seq := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			seq = append(seq, nodeValue(c))
		}
		return seq
	default:
		return n.Value
	}
}
