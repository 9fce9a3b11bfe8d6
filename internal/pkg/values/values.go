package values

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

var ErrMalformedJSON = errors.New("malformed json")
var ErrMissingField = errors.New("missing field")

// Value is a JSON value. The set of implementations is closed:
// String, Integer, Float, Boolean, Null, Array and Object.
type Value interface {
	value()
}

type String string
type Integer int64
type Float float64
type Boolean bool
type Null struct{}
type Array []Value

func (String) value()  {}
func (Integer) value() {}
func (Float) value()   {}
func (Boolean) value() {}
func (Null) value()    {}
func (Array) value()   {}
func (Object) value()  {}

type Member struct {
	Name  string
	Value Value
}

// Object keeps its members in insertion order. Names are unique.
type Object struct {
	members []Member
}

func NewObject(members ...Member) Object {
	o := Object{}
	for _, m := range members {
		o.Set(m.Name, m.Value)
	}
	return o
}

func (o *Object) Set(name string, v Value) {
	for i := range o.members {
		if o.members[i].Name == name {
			o.members[i].Value = v
			return
		}
	}
	o.members = append(o.members, Member{Name: name, Value: v})
}

func (o Object) Get(name string) (Value, bool) {
	for _, m := range o.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

func (o Object) Members() []Member {
	m := make([]Member, len(o.members))
	copy(m, o.members)
	return m
}

func (o Object) Keys() []string {
	keys := make([]string, 0, len(o.members))
	for _, m := range o.members {
		keys = append(keys, m.Name)
	}
	return keys
}

func (o Object) Len() int {
	return len(o.members)
}

// Int returns the named member as an int64. Absent members, nulls and
// non-integer values are reported as ErrMissingField.
func (o Object) Int(name string) (int64, error) {
	v, ok := o.Get(name)
	if !ok {
		return 0, MissingField(name)
	}
	switch n := v.(type) {
	case Integer:
		return int64(n), nil
	case Float:
		if f := float64(n); f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return int64(f), nil
		}
	}
	return 0, MissingField(name)
}

func (o Object) OptionalInt(name string) (int64, bool, error) {
	v, ok := o.Get(name)
	if !ok {
		return 0, false, nil
	}
	if _, isNull := v.(Null); isNull {
		return 0, false, nil
	}
	i, err := o.Int(name)
	if err != nil {
		return 0, false, err
	}
	return i, true, nil
}

func (o Object) String(name string) (string, error) {
	v, ok := o.Get(name)
	if !ok {
		return "", MissingField(name)
	}
	s, ok := v.(String)
	if !ok {
		return "", MissingField(name)
	}
	return string(s), nil
}

func (o Object) Object(name string) (Object, error) {
	v, ok := o.Get(name)
	if !ok {
		return Object{}, MissingField(name)
	}
	obj, ok := v.(Object)
	if !ok {
		return Object{}, MissingField(name)
	}
	return obj, nil
}

func (o Object) Array(name string) (Array, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, MissingField(name)
	}
	arr, ok := v.(Array)
	if !ok {
		return nil, MissingField(name)
	}
	return arr, nil
}

func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// Parse accepts a syntactically valid JSON document. Numbers that are not
// finite float64 values, unpaired \u surrogate escapes and nesting deeper
// than fastjson.MaxDepth are rejected.
func Parse(s string) (Value, error) {
	err := fastjson.Validate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}

	err = checkSurrogates(s)
	if err != nil {
		return nil, err
	}

	var p fastjson.Parser
	v, err := p.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}

	return fromFastJSON(v)
}

// checkSurrogates expects a document that has already been validated, so
// every backslash starts a complete escape sequence.
func checkSurrogates(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			continue
		}
		if s[i+1] != 'u' {
			i++
			continue
		}

		r, _ := strconv.ParseUint(s[i+2:i+6], 16, 32)
		switch {
		case r >= 0xDC00 && r <= 0xDFFF:
			return fmt.Errorf("%w: unpaired surrogate \\u%s", ErrMalformedJSON, s[i+2:i+6])
		case r >= 0xD800 && r <= 0xDBFF:
			if i+12 > len(s) || s[i+6] != '\\' || s[i+7] != 'u' {
				return fmt.Errorf("%w: unpaired surrogate \\u%s", ErrMalformedJSON, s[i+2:i+6])
			}
			low, _ := strconv.ParseUint(s[i+8:i+12], 16, 32)
			if low < 0xDC00 || low > 0xDFFF {
				return fmt.Errorf("%w: unpaired surrogate \\u%s", ErrMalformedJSON, s[i+2:i+6])
			}
			i += 11
		default:
			i += 5
		}
	}
	return nil
}

func ParseBytes(b []byte) (Value, error) {
	return Parse(string(b))
}

// ParseObject is Parse for documents that must be a JSON object.
func ParseObject(s string) (Object, error) {
	v, err := Parse(s)
	if err != nil {
		return Object{}, err
	}
	obj, ok := v.(Object)
	if !ok {
		return Object{}, fmt.Errorf("%w: expected an object", ErrMalformedJSON)
	}
	return obj, nil
}

func fromFastJSON(v *fastjson.Value) (Value, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return Null{}, nil
	case fastjson.TypeTrue:
		return Boolean(true), nil
	case fastjson.TypeFalse:
		return Boolean(false), nil
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return String(b), nil
	case fastjson.TypeNumber:
		return parseNumber(string(v.MarshalTo(nil)))
	case fastjson.TypeArray:
		items, _ := v.Array()
		arr := make(Array, 0, len(items))
		for _, item := range items {
			val, err := fromFastJSON(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case fastjson.TypeObject:
		o, _ := v.Object()
		obj := Object{members: make([]Member, 0, o.Len())}
		var err error
		o.Visit(func(key []byte, v *fastjson.Value) {
			if err != nil {
				return
			}
			var val Value
			val, err = fromFastJSON(v)
			obj.Set(string(key), val)
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	return Null{}, nil
}

// an integer literal that does not fit in an int64 is kept as a Float
func parseNumber(raw string) (Value, error) {
	if !strings.ContainsAny(raw, ".eE") {
		i, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return Integer(i), nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: number %s is not a finite float64", ErrMalformedJSON, raw)
	}
	return Float(f), nil
}

// Encode renders compact JSON. Object members and array elements keep their order.
func Encode(v Value) string {
	return string(AppendEncoded(nil, v))
}

func AppendEncoded(b []byte, v Value) []byte {
	switch val := v.(type) {
	case nil, Null:
		return append(b, "null"...)
	case String:
		return appendString(b, string(val))
	case Integer:
		return strconv.AppendInt(b, int64(val), 10)
	case Float:
		return appendFloat(b, float64(val))
	case Boolean:
		return strconv.AppendBool(b, bool(val))
	case Array:
		b = append(b, '[')
		for i, item := range val {
			if i > 0 {
				b = append(b, ',')
			}
			b = AppendEncoded(b, item)
		}
		return append(b, ']')
	case Object:
		b = append(b, '{')
		for i, m := range val.members {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendString(b, m.Name)
			b = append(b, ':')
			b = AppendEncoded(b, m.Value)
		}
		return append(b, '}')
	}
	return append(b, "null"...)
}

func appendString(b []byte, s string) []byte {
	q, err := json.Marshal(s)
	if err != nil {
		return append(b, `""`...)
	}
	return append(b, q...)
}

// floats always carry a fraction or an exponent so that they are read back as floats
func appendFloat(b []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(b, "null"...)
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	start := len(b)
	b = strconv.AppendFloat(b, f, format, -1, 64)

	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n-start >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
		return b
	}

	if !bytes.ContainsAny(b[start:], ".eE") {
		b = append(b, ".0"...)
	}

	return b
}

func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		if !ok || len(x.members) != len(y.members) {
			return false
		}
		for i := range x.members {
			if x.members[i].Name != y.members[i].Name || !Equal(x.members[i].Value, y.members[i].Value) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	return a == b
}
