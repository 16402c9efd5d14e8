// Package schema validates untyped records, as decoded from JSON, into typed
// Go structs.
//
// Validation runs in two steps. Struct checks the shape of the record: each
// key declared by a json tag must be present and hold the right primitive
// type. A `schema:"optional"` tag allows the key to be absent and a
// `schema:"nullable"` tag allows an explicit null. Only when the shape is
// sound are value constraints from `validate` tags checked.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type fieldSpec struct {
	index    int
	name     string
	typ      reflect.Type
	optional bool
	nullable bool
}

func structFields(t reflect.Type) []fieldSpec {
	var fields []fieldSpec
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		flags := strings.Split(f.Tag.Get("schema"), ",")
		fields = append(fields, fieldSpec{
			index:    i,
			name:     name,
			typ:      f.Type,
			optional: slices.Contains(flags, "optional"),
			nullable: slices.Contains(flags, "nullable"),
		})
	}
	return fields
}

// FieldNames returns the keys declared by the json tags of the struct dst
// points to.
func FieldNames(dst any) []string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return lo.Map(structFields(t), func(f fieldSpec, _ int) string { return f.name })
}

// UnknownKeys returns the keys of obj that dst does not declare, sorted.
func UnknownKeys(obj map[string]any, dst any) []string {
	declared := FieldNames(dst)
	unknown := lo.Filter(lo.Keys(obj), func(k string, _ int) bool {
		return !lo.Contains(declared, k)
	})
	slices.Sort(unknown)
	return unknown
}

// Object asserts that raw is a JSON object.
func Object(raw any, path string) (map[string]any, []Issue) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, []Issue{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected object, received %s", TypeOf(raw)),
			Err:     ErrNotObject,
		}}
	}
	return obj, nil
}

// Struct decodes the record raw into the struct dst points to. Fields of dst
// whose keys are absent keep their current value, so dst may carry defaults.
// The record is never modified.
func Struct(raw any, dst any, path string, opts Options) []Issue {
	obj, issues := Object(raw, path)
	if issues != nil {
		return issues
	}

	if opts.UnknownFields == UnknownFieldsError {
		for _, key := range UnknownKeys(obj, dst) {
			issues = append(issues, Issue{
				Path:    Join(path, key),
				Code:    CodeUnrecognizedKey,
				Message: "unrecognized key",
			})
		}
	}

	rv := reflect.ValueOf(dst).Elem()
	for _, f := range structFields(rv.Type()) {
		p := Join(path, f.name)
		v, present := obj[f.name]
		switch {
		case !present:
			if !f.optional {
				issues = append(issues, Issue{Path: p, Code: CodeRequired, Message: "required"})
			}
			continue
		case v == nil:
			if !f.nullable {
				issues = append(issues, Issue{
					Path:    p,
					Code:    CodeInvalidType,
					Message: fmt.Sprintf("expected %s, received null", describe(f.typ)),
				})
			}
			continue
		}

		if err := assign(rv.Field(f.index), v); err != nil {
			issues = append(issues, Issue{
				Path:    p,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected %s, received %s", describe(f.typ), TypeOf(v)),
				Err:     err,
			})
		}
	}

	if len(issues) > 0 {
		return issues
	}
	return Constraints(dst, path)
}

func assign(field reflect.Value, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	target := reflect.New(field.Type())
	if err := json.Unmarshal(data, target.Interface()); err != nil {
		return err
	}
	field.Set(target.Elem())
	return nil
}

func describe(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "value"
	}
}

// TypeOf names the JSON type of a decoded value.
func TypeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case json.Number:
		return "number"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Record turns raw into a generic JSON value. Raw JSON bytes are decoded;
// generic values pass through; any other Go value is round-tripped through
// encoding/json. Numbers decoded from bytes are kept as json.Number.
func Record(raw any) (any, error) {
	switch v := raw.(type) {
	case nil, bool, string, float64, json.Number, map[string]any, []any:
		return v, nil
	case json.RawMessage:
		return decodeJSON(v)
	case []byte:
		return decodeJSON(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding payload: %w", err)
		}
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding payload: unexpected data after top-level value")
	}
	return v, nil
}

// RecordIssue converts a Record error into an invalid_json issue.
func RecordIssue(err error) Issue {
	return Issue{Code: CodeInvalidJSON, Message: err.Error(), Err: err}
}
