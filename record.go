package formdata

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Record is an ordered collection of key-value pairs. It is the input shape
// of choice when the order of the emitted pairs matters: structs keep their
// declaration order and Records keep their literal order, but Go maps have no
// order at all and are listed sorted by key instead.
type Record []Field

// Field is a single entry in a [Record].
type Field struct {
	Key   string
	Value interface{}
}

// toRecord coerces a top-level value into an ordered record. Accepted shapes
// are a [Record] (or bare []Field), a string-keyed map, a struct or struct
// pointer, and a sequence of 2-element pairs. Everything else is an
// [ErrInvalidShape].
func toRecord(v interface{}) (Record, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, shapeError(v)
	}

	switch rec := rv.Interface().(type) {
	case Record:
		return rec, nil
	case []Field:
		return rec, nil
	case File:
		// A file reference is a leaf, never a record.
		return nil, shapeError(v)
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, shapeError(v)
		}
		return mapRecord(rv), nil
	case reflect.Struct:
		return structRecord(rv), nil
	case reflect.Slice, reflect.Array:
		return pairRecord(rv)
	default:
		return nil, shapeError(v)
	}
}

func shapeError(v interface{}) error {
	return fmt.Errorf("%w: got %T (%v)", ErrInvalidShape, v, v)
}

// structRecord lists the exported fields of a struct in declaration order,
// honouring the form tag.
func structRecord(v reflect.Value) Record {
	tags := tags(v.Type())
	rec := make(Record, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		tag := tags[i]
		if tag.Ignore || tag.Name == "" {
			continue
		}
		fv := v.Field(i)
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		rec = append(rec, Field{Key: tag.Name, Value: fv.Interface()})
	}
	return rec
}

// mapRecord lists map entries sorted by rendered key.
func mapRecord(v reflect.Value) Record {
	keys := v.MapKeys()
	rec := make(Record, 0, len(keys))
	for _, k := range keys {
		rec = append(rec, Field{
			Key:   scalarString(indirect(k)),
			Value: v.MapIndex(k).Interface(),
		})
	}
	sort.Slice(rec, func(i, j int) bool { return rec[i].Key < rec[j].Key })
	return rec
}

// pairRecord accepts a sequence whose every element is itself a 2-element
// sequence, e.g. [][2]string or []Pair.
func pairRecord(v reflect.Value) (Record, error) {
	rec := make(Record, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		el := indirect(v.Index(i))
		if !el.IsValid() {
			return nil, shapeError(v.Interface())
		}
		if (el.Kind() != reflect.Slice && el.Kind() != reflect.Array) || el.Len() != 2 {
			return nil, shapeError(v.Interface())
		}
		rec = append(rec, Field{
			Key:   scalarString(indirect(el.Index(0))),
			Value: el.Index(1).Interface(),
		})
	}
	return rec, nil
}

// cache of parsed form tags, keyed by struct [reflect.Type]. Parsing tags
// involves a pass over every field, so repeat encodings of the same type skip
// it. Safe for concurrent use.
var structTagCache sync.Map

type tag struct {
	Name   string
	Omit   bool
	Ignore bool
}

func tags(tt reflect.Type) []*tag {
	if cached, ok := structTagCache.Load(tt); ok {
		return cached.([]*tag)
	}

	tags := make([]*tag, tt.NumField())
	for i := 0; i < tt.NumField(); i++ {
		f := tt.Field(i)
		if f.PkgPath != "" {
			// Unexported field.
			tags[i] = &tag{Ignore: true}
			continue
		}
		tag := parseTag(f.Tag.Get("form"))
		if !tag.Ignore && tag.Name == "" {
			tag.Name = f.Name
		}
		tags[i] = tag
	}

	structTagCache.Store(tt, tags)
	return tags
}

func parseTag(str string) *tag {
	str = strings.TrimSpace(str)
	if str == "-" {
		return &tag{Ignore: true}
	}

	parts := strings.Split(str, ",")
	t := &tag{}

	// The first part is the field name; a hyphen means the field is skipped
	// entirely.
	name := strings.TrimSpace(parts[0])
	switch name {
	case "-":
		t.Ignore = true
	default:
		t.Name = name
	}

	// The remaining parts are flags.
	for _, p := range parts[1:] {
		switch strings.TrimSpace(p) {
		case "omitempty":
			t.Omit = true
		case "ignore":
			t.Ignore = true
		}
	}

	return t
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
