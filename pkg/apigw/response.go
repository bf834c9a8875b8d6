package apigw

import (
	"bytes"
	"encoding/json"
	"reflect"
)

const (
	// ContentTypeHeader is the header key checked by IsCorrectHeaders. Matching is case sensitive.
	ContentTypeHeader = "Content-Type"
	// ContentTypeJSON is the only accepted Content-Type value
	ContentTypeJSON = "application/json"
)

var jsonNumberType = reflect.TypeOf(json.Number(""))

// IsCorrectHeaders reports whether headers is a string-keyed mapping whose
// "Content-Type" entry is exactly "application/json". Parameterised values
// such as "application/json; charset=utf-8" and case variants are rejected.
func IsCorrectHeaders(headers any) bool {
	switch h := headers.(type) {
	case map[string]string:
		v, ok := h[ContentTypeHeader]
		return ok && v == ContentTypeJSON
	case map[string]any:
		s, ok := stringValue(h[ContentTypeHeader])
		return ok && s == ContentTypeJSON
	}

	rv, ok := indirect(reflect.ValueOf(headers))
	if !ok || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return false
	}

	v := rv.MapIndex(reflect.ValueOf(ContentTypeHeader).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return false
	}
	s, ok := stringValue(v.Interface())
	return ok && s == ContentTypeJSON
}

// IsAPIGatewayResponse reports whether candidate has the shape of an API
// Gateway proxy response: a string body, headers accepted by
// IsCorrectHeaders and a numeric statusCode. Checks run in that order and
// stop at the first failure. Any malformed input yields false.
//
// Accepted candidates are string-keyed maps, structs (inspected through their
// JSON encoding, e.g. events.APIGatewayProxyResponse) and raw JSON bytes
// holding an object.
func IsAPIGatewayResponse(candidate any) bool {
	obj, ok := asObject(candidate)
	if !ok {
		return false
	}

	body, ok := obj["body"]
	if !ok || !isString(body) {
		return false
	}

	headers, ok := obj["headers"]
	if !ok || !IsCorrectHeaders(headers) {
		return false
	}

	statusCode, ok := obj["statusCode"]
	return ok && isNumber(statusCode)
}

// asObject normalises candidate into a string-keyed map
func asObject(candidate any) (map[string]any, bool) {
	switch v := candidate.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case json.RawMessage:
		return decodeObject(v)
	case []byte:
		return decodeObject(v)
	}

	rv, ok := indirect(reflect.ValueOf(candidate))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		obj := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			obj[iter.Key().String()] = iter.Value().Interface()
		}
		return obj, true
	case reflect.Struct:
		data, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, false
		}
		return decodeObject(data)
	default:
		return nil, false
	}
}

func decodeObject(data []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// indirect follows pointers and interfaces, reporting false on nil
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// stringValue returns the value of a string kind, excluding json.Number
func stringValue(v any) (string, bool) {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || rv.Kind() != reflect.String || rv.Type() == jsonNumberType {
		return "", false
	}
	return rv.String(), true
}

func isString(v any) bool {
	_, ok := stringValue(v)
	return ok
}

func isNumber(v any) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return false
	}
	if rv.Type() == jsonNumberType {
		return true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
