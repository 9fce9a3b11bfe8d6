package filters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/geo-features/internal/pkg/values"
)

var ErrUnsupportedExpressionType = errors.New("unsupported expression type")
var ErrUnsupportedElementType = errors.New("unsupported element type")

// Filter is a query scoped to the features of a single collection.
type Filter struct {
	CollectionID int64
	Expression   Expression
}

// Expression is one of Equals, NotEquals, And or Or.
type Expression interface {
	expression()
}

type Equals struct {
	Field string
	Value Element
}

type NotEquals struct {
	Field string
	Value Element
}

type And []Expression
type Or []Expression

func (Equals) expression()    {}
func (NotEquals) expression() {}
func (And) expression()       {}
func (Or) expression()        {}

type ElementType int

const (
	StringElement ElementType = iota
	NumberElement
)

func (t ElementType) String() string {
	if t == NumberElement {
		return "number"
	}
	return "string"
}

// Element is a typed literal. Numbers keep their JSON text.
type Element struct {
	Type  ElementType
	Value string
}

func StringValue(s string) Element {
	return Element{Type: StringElement, Value: s}
}

func NumberValue(text string) Element {
	return Element{Type: NumberElement, Value: text}
}

// Parse reads a query of the form
//
//	{"collection_id": 5, "where": {"type": "equals", "field": "status", "value": "open"}}
func Parse(v values.Value) (Filter, error) {
	obj, ok := v.(values.Object)
	if !ok {
		return Filter{}, fmt.Errorf("%w: filter must be an object", values.ErrMalformedJSON)
	}

	collectionID, err := obj.Int("collection_id")
	if err != nil {
		return Filter{}, err
	}

	where, err := obj.Object("where")
	if err != nil {
		return Filter{}, err
	}

	expr, err := parseExpression(where)
	if err != nil {
		return Filter{}, err
	}

	return Filter{CollectionID: collectionID, Expression: expr}, nil
}

func ParseText(s string) (Filter, error) {
	v, err := values.Parse(s)
	if err != nil {
		return Filter{}, err
	}
	return Parse(v)
}

func parseExpression(obj values.Object) (Expression, error) {
	t, err := obj.String("type")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(t) {
	case "equals":
		field, value, err := parseLeaf(obj)
		if err != nil {
			return nil, err
		}
		return Equals{Field: field, Value: value}, nil
	case "not_equals":
		field, value, err := parseLeaf(obj)
		if err != nil {
			return nil, err
		}
		return NotEquals{Field: field, Value: value}, nil
	case "and":
		children, err := parseExpressions(obj)
		if err != nil {
			return nil, err
		}
		return And(children), nil
	case "or":
		children, err := parseExpressions(obj)
		if err != nil {
			return nil, err
		}
		return Or(children), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedExpressionType, t)
}

func parseLeaf(obj values.Object) (string, Element, error) {
	field, err := obj.String("field")
	if err != nil {
		return "", Element{}, err
	}

	v, ok := obj.Get("value")
	if !ok {
		return "", Element{}, values.MissingField("value")
	}

	switch val := v.(type) {
	case values.String:
		return field, StringValue(string(val)), nil
	case values.Integer, values.Float:
		return field, NumberValue(values.Encode(val)), nil
	}

	return "", Element{}, fmt.Errorf("%w: value of %s must be a string or a number", ErrUnsupportedElementType, field)
}

func parseExpressions(obj values.Object) ([]Expression, error) {
	items, err := obj.Array("expressions")
	if err != nil {
		return nil, err
	}

	children := make([]Expression, 0, len(items))
	for _, item := range items {
		child, ok := item.(values.Object)
		if !ok {
			return nil, fmt.Errorf("%w: expressions must be objects", values.ErrMalformedJSON)
		}

		expr, err := parseExpression(child)
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}

	return children, nil
}
