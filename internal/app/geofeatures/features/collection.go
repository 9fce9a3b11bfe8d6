package features

import (
	"fmt"

	"github.com/diwise/geo-features/internal/pkg/values"
)

// FeatureCollection is a named grouping of features. Features holds the
// members that were requested, not necessarily all of them.
type FeatureCollection struct {
	ID         Identifier
	Label      string
	Properties values.Object
	Features   []Feature
}

func NewFeatureCollection(id Identifier, label string, properties values.Object) FeatureCollection {
	return FeatureCollection{
		ID:         id,
		Label:      label,
		Properties: properties,
		Features:   []Feature{},
	}
}

func ParseFeatureCollection(v values.Value) (FeatureCollection, error) {
	obj, ok := v.(values.Object)
	if !ok {
		return FeatureCollection{}, fmt.Errorf("%w: feature collection must be an object", values.ErrMalformedJSON)
	}

	id, err := parseIdentifier(obj)
	if err != nil {
		return FeatureCollection{}, err
	}

	label, err := obj.String("label")
	if err != nil {
		return FeatureCollection{}, err
	}

	properties, err := parseProperties(obj)
	if err != nil {
		return FeatureCollection{}, err
	}

	fc := NewFeatureCollection(id, label, properties)

	f, ok := obj.Get("features")
	if !ok {
		return fc, nil
	}

	switch items := f.(type) {
	case values.Null:
		return fc, nil
	case values.Array:
		for _, item := range items {
			feature, err := ParseFeature(item)
			if err != nil {
				return FeatureCollection{}, err
			}
			fc.Features = append(fc.Features, feature)
		}
		return fc, nil
	}

	return FeatureCollection{}, values.MissingField("features")
}

func ParseFeatureCollectionText(s string) (FeatureCollection, error) {
	v, err := values.Parse(s)
	if err != nil {
		return FeatureCollection{}, err
	}
	return ParseFeatureCollection(v)
}

// CollectionFromRow builds a collection from a persisted (id, label, properties) tuple.
func CollectionFromRow(id int64, label, properties string) (FeatureCollection, error) {
	props, err := values.ParseObject(properties)
	if err != nil {
		return FeatureCollection{}, err
	}
	return NewFeatureCollection(Assigned(id), label, props), nil
}

// EncodeFeatureCollection leaves out the features member when there are no features.
func EncodeFeatureCollection(fc FeatureCollection) values.Value {
	obj := values.NewObject(
		values.Member{Name: "type", Value: values.String("FeatureCollection")},
		values.Member{Name: "id", Value: fc.ID.Value()},
		values.Member{Name: "label", Value: values.String(fc.Label)},
		values.Member{Name: "properties", Value: fc.Properties},
	)

	if len(fc.Features) > 0 {
		features := make(values.Array, 0, len(fc.Features))
		for _, f := range fc.Features {
			features = append(features, EncodeFeature(f))
		}
		obj.Set("features", features)
	}

	return obj
}

func (fc FeatureCollection) GeoJSON() string {
	return values.Encode(EncodeFeatureCollection(fc))
}

func EncodeFeatureCollections(collections []FeatureCollection) values.Value {
	arr := make(values.Array, 0, len(collections))
	for _, fc := range collections {
		arr = append(arr, EncodeFeatureCollection(fc))
	}
	return arr
}
