package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/paulmach/orb"
)

var ErrUnsupportedGeometryType = errors.New("unsupported geometry type")
var ErrMalformedGeometry = errors.New("malformed geometry")

// Geometry is implemented by Point only. New variants are added to
// ParseGeometry and EncodeGeometry without touching the Point contract.
type Geometry interface {
	geometry()
	Orb() orb.Geometry
}

type Point struct {
	Longitude float64
	Latitude  float64
}

func (Point) geometry() {}

func (p Point) Orb() orb.Geometry {
	return orb.Point{p.Longitude, p.Latitude}
}

func NewPoint(longitude, latitude float64) Point {
	return Point{Longitude: longitude, Latitude: latitude}
}

func ParseGeometry(v values.Value) (Geometry, error) {
	obj, ok := v.(values.Object)
	if !ok {
		return nil, fmt.Errorf("%w: geometry must be an object", ErrMalformedGeometry)
	}

	t, err := obj.String("type")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedGeometry, err.Error())
	}

	switch strings.ToLower(t) {
	case "point":
		return parsePoint(obj)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometryType, t)
	}
}

func ParseGeometryText(s string) (Geometry, error) {
	v, err := values.Parse(s)
	if err != nil {
		return nil, err
	}
	return ParseGeometry(v)
}

func parsePoint(obj values.Object) (Point, error) {
	coordinates, err := obj.Array("coordinates")
	if err != nil {
		return Point{}, fmt.Errorf("%w: %s", ErrMalformedGeometry, err.Error())
	}

	if len(coordinates) != 2 {
		return Point{}, fmt.Errorf("%w: a point requires exactly two coordinates, got %d", ErrMalformedGeometry, len(coordinates))
	}

	lon, ok := number(coordinates[0])
	if !ok {
		return Point{}, fmt.Errorf("%w: longitude is not a number", ErrMalformedGeometry)
	}

	lat, ok := number(coordinates[1])
	if !ok {
		return Point{}, fmt.Errorf("%w: latitude is not a number", ErrMalformedGeometry)
	}

	return NewPoint(lon, lat), nil
}

func number(v values.Value) (float64, bool) {
	switch n := v.(type) {
	case values.Integer:
		return float64(n), true
	case values.Float:
		return float64(n), true
	}
	return 0, false
}

func EncodeGeometry(g Geometry) values.Value {
	switch geom := g.(type) {
	case Point:
		return values.NewObject(
			values.Member{Name: "type", Value: values.String("Point")},
			values.Member{Name: "coordinates", Value: values.Array{values.Float(geom.Longitude), values.Float(geom.Latitude)}},
		)
	}
	return values.Null{}
}
