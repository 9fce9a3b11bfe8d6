package filters

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")
var ErrEmptyExpressionList = errors.New("empty expression list")
var ErrInvalidField = errors.New("invalid field definition")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Kinds a field may declare. A column field must declare one so that a
// mismatched literal is rejected before it reaches the database.
const (
	StringKind  string = "string"
	IntegerKind string = "integer"
	NumberKind  string = "number"
)

// Field maps a name usable in a filter to either a column or a key in the
// properties document of a feature.
type Field struct {
	Name     string `yaml:"name"`
	Column   string `yaml:"column,omitempty"`
	Property string `yaml:"property,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
}

func ColumnField(name, column, kind string) Field {
	return Field{Name: name, Column: column, Kind: kind}
}

func PropertyField(name, property string) Field {
	return Field{Name: name, Property: property}
}

func (f Field) WithKind(kind string) Field {
	f.Kind = kind
	return f
}

func (f Field) validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidField)
	}
	if (f.Column == "") == (f.Property == "") {
		return fmt.Errorf("%w: %s must have either a column or a property", ErrInvalidField, f.Name)
	}
	if f.Column != "" && !identifier.MatchString(f.Column) {
		return fmt.Errorf("%w: %s has an invalid column name %q", ErrInvalidField, f.Name, f.Column)
	}
	if f.Property != "" && !identifier.MatchString(f.Property) {
		return fmt.Errorf("%w: %s has an invalid property key %q", ErrInvalidField, f.Name, f.Property)
	}
	if f.Column != "" && f.Kind == "" {
		return fmt.Errorf("%w: column %s must declare a kind", ErrInvalidField, f.Name)
	}
	switch f.Kind {
	case "", StringKind, IntegerKind, NumberKind:
		return nil
	}
	return fmt.Errorf("%w: %s has an unknown kind %q", ErrInvalidField, f.Name, f.Kind)
}

// accepts reports whether a literal may be compared with the field. A
// property without a declared kind accepts both strings and numbers.
func (f Field) accepts(e Element) error {
	switch f.Kind {
	case "":
		return nil
	case StringKind:
		if e.Type == StringElement {
			return nil
		}
	case NumberKind:
		if e.Type == NumberElement {
			return nil
		}
	case IntegerKind:
		if e.Type == NumberElement {
			if _, err := strconv.ParseInt(e.Value, 10, 64); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s expects %s, got %s %s", ErrUnsupportedElementType, f.Name, f.Kind, e.Type, e.Value)
}

// accessor reads numeric properties only when the stored json value is a
// number, so other values compare as NULL instead of failing the cast.
func (f Field) accessor(t ElementType) string {
	if f.Column != "" {
		return f.Column
	}
	if t == NumberElement {
		return "CASE WHEN json_typeof(properties->'" + f.Property + "') = 'number' THEN (properties->>'" + f.Property + "')::numeric END"
	}
	return "properties->>'" + f.Property + "'"
}

var DefaultFields = []Field{
	ColumnField("id", "id", IntegerKind),
}

// Predicate is a boolean SQL fragment with positional placeholders. Args
// holds the value bound to each placeholder, in order.
type Predicate struct {
	SQL  string
	Args []any
}

type Compiler struct {
	fields map[string]Field
}

func NewCompiler(fields ...Field) (*Compiler, error) {
	if len(fields) == 0 {
		fields = DefaultFields
	}

	c := &Compiler{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
		c.fields[f.Name] = f
	}

	return c, nil
}

func (c *Compiler) Fields() []string {
	return slices.Sorted(maps.Keys(c.fields))
}

// Compile translates the expression of a filter into a predicate numbered from $1.
func (c *Compiler) Compile(f Filter) (Predicate, error) {
	return c.CompileFrom(f.Expression, 1)
}

// CompileFrom numbers the placeholders starting at first so that the predicate
// can be appended to a statement that already binds first-1 arguments.
func (c *Compiler) CompileFrom(expr Expression, first int) (Predicate, error) {
	if first < 1 {
		first = 1
	}

	args := []any{}
	sql, err := c.compile(expr, first, &args)
	if err != nil {
		return Predicate{}, err
	}

	return Predicate{SQL: sql, Args: args}, nil
}

func (c *Compiler) compile(expr Expression, first int, args *[]any) (string, error) {
	switch e := expr.(type) {
	case Equals:
		return c.leaf(e.Field, "=", e.Value, first, args)
	case NotEquals:
		return c.leaf(e.Field, "<>", e.Value, first, args)
	case And:
		return c.list(e, "AND", first, args)
	case Or:
		return c.list(e, "OR", first, args)
	case nil:
		return "", fmt.Errorf("%w: missing expression", ErrUnsupportedExpressionType)
	}

	return "", fmt.Errorf("%w: %T", ErrUnsupportedExpressionType, expr)
}

func (c *Compiler) leaf(name, operator string, value Element, first int, args *[]any) (string, error) {
	field, ok := c.fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	if err := field.accepts(value); err != nil {
		return "", err
	}

	arg, err := value.arg()
	if err != nil {
		return "", err
	}

	*args = append(*args, arg)
	placeholder := "$" + strconv.Itoa(first+len(*args)-1)

	return field.accessor(value.Type) + " " + operator + " " + placeholder, nil
}

func (c *Compiler) list(exprs []Expression, operator string, first int, args *[]any) (string, error) {
	if len(exprs) == 0 {
		return "", fmt.Errorf("%w: %s requires at least one expression", ErrEmptyExpressionList, strings.ToLower(operator))
	}

	fragments := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		sql, err := c.compile(expr, first, args)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, "("+sql+")")
	}

	return strings.Join(fragments, " "+operator+" "), nil
}

func (e Element) arg() (any, error) {
	if e.Type == StringElement {
		return e.Value, nil
	}

	if i, err := strconv.ParseInt(e.Value, 10, 64); err == nil {
		return i, nil
	}

	f, err := strconv.ParseFloat(e.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrUnsupportedElementType, e.Value)
	}

	return f, nil
}
