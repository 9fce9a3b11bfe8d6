package features

import (
	"fmt"
	"strconv"

	"github.com/diwise/geo-features/internal/pkg/values"
)

// Identifier is either a database assigned key or unassigned.
type Identifier struct {
	id       int64
	assigned bool
}

var Unassigned = Identifier{}

func Assigned(id int64) Identifier {
	return Identifier{id: id, assigned: true}
}

func (i Identifier) Int() (int64, bool) {
	return i.id, i.assigned
}

func (i Identifier) IsAssigned() bool {
	return i.assigned
}

func (i Identifier) String() string {
	if !i.assigned {
		return ""
	}
	return strconv.FormatInt(i.id, 10)
}

// Value is null on the wire when unassigned.
func (i Identifier) Value() values.Value {
	if !i.assigned {
		return values.Null{}
	}
	return values.Integer(i.id)
}

func parseIdentifier(obj values.Object) (Identifier, error) {
	id, ok, err := obj.OptionalInt("id")
	if err != nil {
		return Unassigned, err
	}
	if !ok {
		return Unassigned, nil
	}
	return Assigned(id), nil
}

// properties default to an empty object when absent or null
func parseProperties(obj values.Object) (values.Object, error) {
	v, ok := obj.Get("properties")
	if !ok {
		return values.NewObject(), nil
	}

	switch p := v.(type) {
	case values.Null:
		return values.NewObject(), nil
	case values.Object:
		return p, nil
	}

	return values.Object{}, values.MissingField("properties")
}

type Feature struct {
	ID         Identifier
	Geometry   Geometry
	Properties values.Object
}

func NewFeature(id Identifier, g Geometry, properties values.Object) Feature {
	return Feature{
		ID:         id,
		Geometry:   g,
		Properties: properties,
	}
}

func ParseFeature(v values.Value) (Feature, error) {
	obj, ok := v.(values.Object)
	if !ok {
		return Feature{}, fmt.Errorf("%w: feature must be an object", values.ErrMalformedJSON)
	}

	id, err := parseIdentifier(obj)
	if err != nil {
		return Feature{}, err
	}

	g, ok := obj.Get("geometry")
	if !ok {
		return Feature{}, values.MissingField("geometry")
	}

	geometry, err := ParseGeometry(g)
	if err != nil {
		return Feature{}, err
	}

	properties, err := parseProperties(obj)
	if err != nil {
		return Feature{}, err
	}

	return NewFeature(id, geometry, properties), nil
}

func ParseFeatureText(s string) (Feature, error) {
	v, err := values.Parse(s)
	if err != nil {
		return Feature{}, err
	}
	return ParseFeature(v)
}

// FeatureFromRow builds a feature from a persisted (id, properties, geometry) tuple
// where properties is JSON text and geometry is GeoJSON text.
func FeatureFromRow(id int64, properties, geometry string) (Feature, error) {
	props, err := values.ParseObject(properties)
	if err != nil {
		return Feature{}, err
	}

	g, err := ParseGeometryText(geometry)
	if err != nil {
		return Feature{}, err
	}

	return NewFeature(Assigned(id), g, props), nil
}

func EncodeFeature(f Feature) values.Value {
	return values.NewObject(
		values.Member{Name: "type", Value: values.String("Feature")},
		values.Member{Name: "id", Value: f.ID.Value()},
		values.Member{Name: "geometry", Value: EncodeGeometry(f.Geometry)},
		values.Member{Name: "properties", Value: f.Properties},
	)
}

func (f Feature) GeoJSON() string {
	return values.Encode(EncodeFeature(f))
}
