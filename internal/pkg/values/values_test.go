package values

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/valyala/fastjson"
)

func TestParseKeepsKeyOrder(t *testing.T) {
	is := is.New(t)

	v, err := Parse(`{"z":1,"a":2,"m":{"y":true,"b":null}}`)
	is.NoErr(err)

	obj := v.(Object)
	is.Equal(obj.Keys(), []string{"z", "a", "m"})

	m, err := obj.Object("m")
	is.NoErr(err)
	is.Equal(m.Keys(), []string{"y", "b"})

	is.Equal(Encode(v), `{"z":1,"a":2,"m":{"y":true,"b":null}}`)
}

func TestParseNumberKinds(t *testing.T) {
	is := is.New(t)

	v, err := Parse(`[1, -7, 1.0, 2.5, 1e3, 9223372036854775807, 92233720368547758070]`)
	is.NoErr(err)

	arr := v.(Array)
	is.Equal(arr[0], Integer(1))
	is.Equal(arr[1], Integer(-7))
	is.Equal(arr[2], Float(1))
	is.Equal(arr[3], Float(2.5))
	is.Equal(arr[4], Float(1000))
	is.Equal(arr[5], Integer(math.MaxInt64))
	is.Equal(arr[6], Float(92233720368547758070))
}

func TestParseScalarDocuments(t *testing.T) {
	is := is.New(t)

	for text, expected := range map[string]Value{
		`"text"`: String("text"),
		`42`:     Integer(42),
		`true`:   Boolean(true),
		`null`:   Null{},
		` 3.25 `: Float(3.25),
		`[]`:     Array{},
	} {
		v, err := Parse(text)
		is.NoErr(err)
		is.True(Equal(v, expected))
	}
}

func TestParseMalformed(t *testing.T) {
	is := is.New(t)

	for _, text := range []string{``, `{`, `{"a":}`, `[1,]`, `{"a":1}x`, `'a'`, `01`} {
		_, err := Parse(text)
		is.True(errors.Is(err, ErrMalformedJSON))
	}
}

func TestParseRejectsNumbersOutOfRange(t *testing.T) {
	is := is.New(t)

	for _, text := range []string{`1e400`, `-1e400`, `{"depth":[1,1e999]}`} {
		_, err := Parse(text)
		is.True(errors.Is(err, ErrMalformedJSON))
	}

	v, err := Parse(`1e300`)
	is.NoErr(err)
	is.Equal(Encode(v), "1e+300")
}

func TestParseRejectsUnpairedSurrogates(t *testing.T) {
	is := is.New(t)

	for _, text := range []string{`"\ud800"`, `"\udc00"`, `"a\ud800b"`, `"\ud800\u0041"`, `{"k":"\ud83d"}`} {
		_, err := Parse(text)
		is.True(errors.Is(err, ErrMalformedJSON))
	}

	v, err := Parse(`"\ud83d\ude00 \\ud800 \u00e5"`)
	is.NoErr(err)
	is.Equal(v, String("\U0001F600 \\ud800 å"))
}

func TestParseNestingLimit(t *testing.T) {
	is := is.New(t)

	nested := func(depth int) string {
		return strings.Repeat("[", depth) + strings.Repeat("]", depth)
	}

	_, err := Parse(nested(fastjson.MaxDepth - 1))
	is.NoErr(err)

	_, err = Parse(nested(fastjson.MaxDepth + 100))
	is.True(errors.Is(err, ErrMalformedJSON))
}

func TestEncodeNumbers(t *testing.T) {
	is := is.New(t)

	is.Equal(Encode(Integer(10)), `10`)
	is.Equal(Encode(Float(10)), `10.0`)
	is.Equal(Encode(Float(0.5)), `0.5`)
	is.Equal(Encode(Float(-0.000000001)), `-1e-9`)
	is.Equal(Encode(Float(1e22)), `1e+22`)
	is.Equal(Encode(Float(math.NaN())), `null`)
	is.Equal(Encode(Float(math.Inf(1))), `null`)
}

func TestEncodeStrings(t *testing.T) {
	is := is.New(t)

	is.Equal(Encode(String(`say "hi"`)), `"say \"hi\""`)
	is.Equal(Encode(String("line\nbreak\x01")), `"line\nbreak\u0001"`)
	is.Equal(Encode(NewObject(Member{Name: "k\"ey", Value: Null{}})), `{"k\"ey":null}`)
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)

	docs := []string{
		`{"name":"Pier 4","depth":12,"rating":4.5,"open":false,"tags":["a","b"],"extra":null}`,
		`[1,1.0,"1",[[]],{}]`,
		`{"nested":{"deeper":{"deepest":[{"x":-1.25e-7}]}}}`,
		`{"unicode":"åäö ✓","escaped":"tab\there"}`,
	}

	for _, doc := range docs {
		v, err := Parse(doc)
		is.NoErr(err)

		again, err := Parse(Encode(v))
		is.NoErr(err)
		is.True(Equal(v, again))
	}
}

func TestRoundTripConstructed(t *testing.T) {
	is := is.New(t)

	v := NewObject(
		Member{Name: "b", Value: Float(3)},
		Member{Name: "a", Value: Array{Integer(1), Float(1), Boolean(true), Null{}}},
		Member{Name: "c", Value: NewObject(Member{Name: "x", Value: String("y")})},
	)

	parsed, err := Parse(Encode(v))
	is.NoErr(err)
	is.True(Equal(v, parsed))
	is.Equal(Encode(parsed), `{"b":3.0,"a":[1,1.0,true,null],"c":{"x":"y"}}`)
}

func TestDuplicateKeysKeepFirstPosition(t *testing.T) {
	is := is.New(t)

	v, err := Parse(`{"a":1,"b":2,"a":3}`)
	is.NoErr(err)
	is.Equal(Encode(v), `{"a":3,"b":2}`)
}

func TestObjectAccessors(t *testing.T) {
	is := is.New(t)

	obj, err := ParseObject(`{"id":5,"label":"harbour","props":{},"list":[1],"f":2.0,"g":2.5,"n":null}`)
	is.NoErr(err)

	id, err := obj.Int("id")
	is.NoErr(err)
	is.Equal(id, int64(5))

	f, err := obj.Int("f")
	is.NoErr(err)
	is.Equal(f, int64(2))

	_, err = obj.Int("g")
	is.True(errors.Is(err, ErrMissingField))

	_, err = obj.Int("label")
	is.True(errors.Is(err, ErrMissingField))

	_, err = obj.String("absent")
	is.True(errors.Is(err, ErrMissingField))
	is.Equal(err.Error(), "missing field: absent")

	_, ok, err := obj.OptionalInt("n")
	is.NoErr(err)
	is.True(!ok)

	_, err = obj.Object("list")
	is.True(errors.Is(err, ErrMissingField))

	list, err := obj.Array("list")
	is.NoErr(err)
	is.Equal(len(list), 1)
}

func TestParseObjectRejectsOtherDocuments(t *testing.T) {
	is := is.New(t)

	_, err := ParseObject(`[1,2]`)
	is.True(errors.Is(err, ErrMalformedJSON))
}
