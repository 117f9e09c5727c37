package formdata

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrInvalidShape is returned by [Create] when the top-level value is not
// record-like. It is wrapped with the type and rendering of the offending
// value.
var ErrInvalidShape = errors.New("formdata: expected record-like or pair-sequence input")

// Marshaler is the interface implemented by types that can render themselves
// as a single form value. A value implementing Marshaler is treated as a
// scalar leaf, never recursed into.
type Marshaler interface {
	MarshalForm() (string, error)
}

var fileType = reflect.TypeOf(File{})

// Create flattens v depth-first into name-value leaves, hands each to the
// formatter, and returns the formatter's payload. Top-level keys become bare
// names; nested record keys append "[key]" and sequence elements append "[]".
// Leaves the formatter declines are dropped; the rest reach
// [Formatter.Output] in traversal order.
//
// The shape check on v is the only failure mode of the traversal itself: any
// leaf value is accepted as a scalar. A failing [Marshaler] or a formatter
// Output error propagates unmodified.
func Create(v interface{}, f Formatter, opts Options) (interface{}, error) {
	rec, err := toRecord(v)
	if err != nil {
		return nil, err
	}

	var units []interface{}
	for _, field := range rec {
		units, err = walk(units, f, field.Key, reflect.ValueOf(field.Value))
		if err != nil {
			return nil, err
		}
	}
	return f.Output(units, opts)
}

// MustCreate is like [Create] but panics on error. It simplifies call sites
// where a malformed structure is a programming error rather than an expected
// input.
func MustCreate(v interface{}, f Formatter, opts Options) interface{} {
	payload, err := Create(v, f, opts)
	if err != nil {
		panic(err)
	}
	return payload
}

func walk(units []interface{}, f Formatter, name string, v reflect.Value) ([]interface{}, error) {
	v = indirect(v)

	// A nil leaf renders as the empty value; whether it survives is the
	// formatter's call.
	if !v.IsValid() {
		return emit(units, f, name, "", false), nil
	}

	if v.Type() == fileType {
		return emit(units, f, name, v.Interface().(File).Path, true), nil
	}

	// Handle custom Marshaler before structural dispatch so that a type can
	// override its natural traversal.
	if m, ok := asMarshaler(v); ok {
		s, err := m.MarshalForm()
		if err != nil {
			return nil, err
		}
		return emit(units, f, name, s, false), nil
	}

	switch rec := v.Interface().(type) {
	case Record:
		return walkRecord(units, f, name, rec)
	case []Field:
		return walkRecord(units, f, name, rec)
	}

	// Dispatch based on the kind of the value.
	switch v.Kind() {
	case reflect.Struct:
		return walkRecord(units, f, name, structRecord(v))
	case reflect.Map:
		return walkRecord(units, f, name, mapRecord(v))
	case reflect.Slice, reflect.Array:
		var err error
		for i := 0; i < v.Len(); i++ {
			units, err = walk(units, f, name+"[]", v.Index(i))
			if err != nil {
				return nil, err
			}
		}
		return units, nil
	default:
		return emit(units, f, name, scalarString(v), false), nil
	}
}

// walkRecord recurses into a nested record, appending a bracketed key segment
// for each field. The top level does not come through here; its keys are bare
// by contract.
func walkRecord(units []interface{}, f Formatter, name string, rec Record) ([]interface{}, error) {
	var err error
	for _, field := range rec {
		units, err = walk(units, f, name+"["+field.Key+"]", reflect.ValueOf(field.Value))
		if err != nil {
			return nil, err
		}
	}
	return units, nil
}

func emit(units []interface{}, f Formatter, name, value string, file bool) []interface{} {
	if u := f.Format(name, value, file); u != nil {
		units = append(units, u)
	}
	return units
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	return nil, false
}

// indirect unwraps interfaces and pointers. A nil at any level yields the
// zero Value.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func scalarString(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprint(v.Interface())
	}
}
