package geofeatures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/app/geofeatures/filters"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/diwise/geo-features/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestCreateFeature(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := readerMock(collection(5, "benches"))
	w := &FeaturesWriterMock{
		CreateFeatureFunc: func(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error) {
			f.ID = features.Assigned(42)
			return f, nil
		},
	}
	m := msgCtxMock()

	a := New(r, w, m)
	fc, err := a.CreateFeature(ctx, 5, []byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[17.3,62.4]},"properties":{"kind":"bench"}}`))
	is.NoErr(err)

	is.Equal(fc.Label, "benches")
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].ID, features.Assigned(42))
	is.Equal(w.CreateFeatureCalls()[0].CollectionID, int64(5))

	is.Equal(len(m.PublishOnTopicCalls()), 1)
	msg := m.PublishOnTopicCalls()[0].Message
	is.Equal(msg.TopicName(), "feature.updated")

	evt := types.FeatureUpdated{}
	is.NoErr(json.Unmarshal(msg.Body(), &evt))
	is.Equal(evt.Action, types.FeatureCreated)
	is.Equal(evt.FeatureID, int64(42))
	is.Equal(evt.CollectionID, int64(5))
	is.True(evt.EventID != "")
}

func TestCreateFeatureInUnknownCollection(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := &FeaturesReaderMock{
		GetCollectionFunc: func(ctx context.Context, collectionID int64) (features.FeatureCollection, error) {
			return features.FeatureCollection{}, fmt.Errorf("%w: collection %d", ErrNotFound, collectionID)
		},
	}
	w := &FeaturesWriterMock{}

	a := New(r, w, msgCtxMock())
	_, err := a.CreateFeature(ctx, 9, []byte(`{"geometry":{"type":"Point","coordinates":[1,2]}}`))
	is.True(errors.Is(err, ErrNotFound))
	is.Equal(len(w.CreateFeatureCalls()), 0)
}

func TestCreateFeatureWithInvalidGeometry(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(&FeaturesReaderMock{}, &FeaturesWriterMock{}, msgCtxMock())

	_, err := a.CreateFeature(ctx, 1, []byte(`{"geometry":{"type":"Polygon","coordinates":[]}}`))
	is.True(errors.Is(err, features.ErrUnsupportedGeometryType))

	_, err = a.CreateFeature(ctx, 1, []byte(`{"geometry":`))
	is.True(errors.Is(err, values.ErrMalformedJSON))
}

func TestUpdateFeatureRequiresID(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(readerMock(collection(1, "parks")), &FeaturesWriterMock{}, msgCtxMock())

	_, err := a.UpdateFeature(ctx, 1, []byte(`{"geometry":{"type":"Point","coordinates":[1,2]}}`))
	is.True(errors.Is(err, values.ErrMissingField))
	is.Equal(err.Error(), "missing field: id")
}

func TestUpdateFeature(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := &FeaturesWriterMock{
		UpdateFeatureFunc: func(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error) {
			return f, nil
		},
	}
	m := msgCtxMock()

	a := New(readerMock(collection(1, "parks")), w, m)
	fc, err := a.UpdateFeature(ctx, 1, []byte(`{"id":3,"geometry":{"type":"Point","coordinates":[1,2]}}`))
	is.NoErr(err)
	is.Equal(fc.Features[0].ID, features.Assigned(3))

	evt := types.FeatureUpdated{}
	is.NoErr(json.Unmarshal(m.PublishOnTopicCalls()[0].Message.Body(), &evt))
	is.Equal(evt.Action, types.FeatureChanged)
}

func TestCreateCollectionWithFeatures(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := &FeaturesWriterMock{
		CreateCollectionFunc: func(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error) {
			return storeCollection(7, fc), nil
		},
	}
	m := msgCtxMock()

	a := New(&FeaturesReaderMock{}, w, m)
	fc, err := a.CreateCollection(ctx, []byte(`{"label":"buoys","features":[
		{"geometry":{"type":"Point","coordinates":[1,2]}},
		{"geometry":{"type":"Point","coordinates":[3,4]}}
	]}`))
	is.NoErr(err)

	is.Equal(fc.ID, features.Assigned(7))
	is.Equal(len(fc.Features), 2)
	is.Equal(fc.Features[1].ID, features.Assigned(102))

	is.Equal(len(w.CreateCollectionCalls()), 1)
	is.Equal(len(w.CreateCollectionCalls()[0].Fc.Features), 2)
	is.Equal(len(w.CreateFeatureCalls()), 0)
	is.Equal(len(m.PublishOnTopicCalls()), 2)
}

func TestCreateCollectionFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := &FeaturesWriterMock{
		CreateCollectionFunc: func(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error) {
			return features.FeatureCollection{}, fmt.Errorf("%w: feature 2 could not be stored", ErrPersistence)
		},
	}
	m := msgCtxMock()

	a := New(&FeaturesReaderMock{}, w, m)
	_, err := a.CreateCollection(ctx, []byte(`{"label":"buoys","features":[
		{"geometry":{"type":"Point","coordinates":[1,2]}},
		{"geometry":{"type":"Point","coordinates":[3,4]}}
	]}`))
	is.True(errors.Is(err, ErrPersistence))

	is.Equal(len(w.CreateCollectionCalls()), 1)
	is.Equal(len(w.CreateFeatureCalls()), 0)
	is.Equal(len(m.PublishOnTopicCalls()), 0)
}

func TestCreateCollectionRequiresLabel(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(&FeaturesReaderMock{}, &FeaturesWriterMock{}, msgCtxMock())
	_, err := a.CreateCollection(ctx, []byte(`{"properties":{}}`))
	is.True(errors.Is(err, values.ErrMissingField))
}

func TestUpdateCollectionRequiresID(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(&FeaturesReaderMock{}, &FeaturesWriterMock{}, msgCtxMock())
	_, err := a.UpdateCollection(ctx, []byte(`{"label":"x"}`))
	is.True(errors.Is(err, values.ErrMissingField))
}

func TestQueryFeaturesUsesPaging(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := readerMock(collection(3, "trees"), features.NewFeature(features.Assigned(1), features.NewPoint(1, 2), values.NewObject()))

	a := New(r, &FeaturesWriterMock{}, msgCtxMock())
	fc, err := a.QueryFeatures(ctx, 3, map[string][]string{"page": {"2"}, "size": {"5"}})
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)

	c := applyConditions(r.QueryFeaturesCalls()[0].Conditions...)
	is.Equal(c["collection_id"], int64(3))
	is.Equal(c["offset"], 10)
	is.Equal(c["limit"], 5)
}

func TestQueryFeaturesInBbox(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := readerMock(collection(3, "trees"))
	bbox := features.NewBbox(17, 62, 18, 63)

	a := New(r, &FeaturesWriterMock{}, msgCtxMock())
	_, err := a.QueryFeaturesInBbox(ctx, 3, bbox, nil)
	is.NoErr(err)

	c := applyConditions(r.QueryFeaturesCalls()[0].Conditions...)
	is.Equal(c["bbox"], bbox)
	is.Equal(c["limit"], DefaultPageSize)
}

func TestGetFeatureNotFound(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(readerMock(collection(3, "trees")), &FeaturesWriterMock{}, msgCtxMock())
	_, err := a.GetFeature(ctx, 3, 99)
	is.True(errors.Is(err, ErrNotFound))
}

func TestFilterFeatures(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := readerMock(collection(5, "harbour"))

	a := New(r, &FeaturesWriterMock{}, msgCtxMock())
	err := a.LoadConfig(ctx, strings.NewReader(fieldsConfig))
	is.NoErr(err)

	_, err = a.FilterFeatures(ctx, 5, []byte(`{"collection_id":5,"where":{"type":"and","expressions":[
		{"type":"equals","field":"status","value":"open"},
		{"type":"not_equals","field":"id","value":3}
	]}}`), nil)
	is.NoErr(err)

	c := applyConditions(r.QueryFeaturesCalls()[0].Conditions...)
	p := c["predicate"].(filters.Predicate)
	is.Equal(p.SQL, "(properties->>'status' = $2) AND (id <> $3)")
	is.Equal(p.Args, []any{"open", int64(3)})
	is.Equal(c["collection_id"], int64(5))
}

func TestFilterFeaturesCollectionMismatch(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(readerMock(collection(5, "harbour")), &FeaturesWriterMock{}, msgCtxMock())
	_, err := a.FilterFeatures(ctx, 5, []byte(`{"collection_id":6,"where":{"type":"equals","field":"id","value":1}}`), nil)
	is.True(errors.Is(err, ErrCollectionMismatch))
}

func TestFilterFeaturesUnknownField(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := readerMock(collection(5, "harbour"))

	a := New(r, &FeaturesWriterMock{}, msgCtxMock())
	_, err := a.FilterFeatures(ctx, 5, []byte(`{"collection_id":5,"where":{"type":"equals","field":"status","value":"open"}}`), nil)
	is.True(errors.Is(err, filters.ErrUnknownField))
	is.Equal(len(r.QueryFeaturesCalls()), 0)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := &FeaturesReaderMock{
		GetCollectionByLabelFunc: func(ctx context.Context, label string) (features.FeatureCollection, error) {
			if label == "existing" {
				return collection(1, label), nil
			}
			return features.FeatureCollection{}, ErrNotFound
		},
	}

	w := &FeaturesWriterMock{
		CreateCollectionFunc: func(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error) {
			return storeCollection(10, fc), nil
		},
	}
	m := msgCtxMock()

	a := New(r, w, m)
	err := a.Seed(ctx, strings.NewReader(csvData))
	is.NoErr(err)

	calls := w.CreateCollectionCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[0].Fc.Label, "benches")
	is.Equal(len(calls[0].Fc.Features), 2)
	is.Equal(calls[1].Fc.Label, "playgrounds")
	is.Equal(len(calls[1].Fc.Features), 1)
	is.Equal(len(m.PublishOnTopicCalls()), 3)

	first := calls[0].Fc.Features[0]
	is.Equal(first.Geometry, features.Geometry(features.NewPoint(17.3069, 62.3908)))

	kind, err := first.Properties.String("kind")
	is.NoErr(err)
	is.Equal(kind, "wood")

	is.Equal(calls[1].Fc.Features[0].Properties.Len(), 0)
}

func TestSeedValidatesAllRowsBeforeStoring(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := &FeaturesReaderMock{
		GetCollectionByLabelFunc: func(ctx context.Context, label string) (features.FeatureCollection, error) {
			return features.FeatureCollection{}, ErrNotFound
		},
	}
	w := &FeaturesWriterMock{}

	a := New(r, w, msgCtxMock())
	err := a.Seed(ctx, strings.NewReader("collection;longitude;latitude;properties\nbenches;17.1;62.1;\nbenches;17.2;north;\n"))
	is.True(errors.Is(err, features.ErrMalformedGeometry))

	is.Equal(len(w.CreateCollectionCalls()), 0)
}

func TestSeedInvalidCoordinate(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(&FeaturesReaderMock{}, &FeaturesWriterMock{}, msgCtxMock())
	err := a.Seed(ctx, strings.NewReader("collection;longitude;latitude;properties\nbenches;east;62.1;\n"))
	is.True(errors.Is(err, features.ErrMalformedGeometry))
}

func TestLoadConfigRejectsInvalidFields(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(&FeaturesReaderMock{}, &FeaturesWriterMock{}, msgCtxMock())
	err := a.LoadConfig(ctx, strings.NewReader("fields:\n  - name: status\n"))
	is.True(errors.Is(err, filters.ErrInvalidField))
}

func TestPaging(t *testing.T) {
	is := is.New(t)

	page, size := Paging(nil)
	is.Equal(page, 0)
	is.Equal(size, DefaultPageSize)

	page, size = Paging(map[string][]string{"Page": {"3"}, "size": {"100000"}})
	is.Equal(page, 3)
	is.Equal(size, MaxPageSize)

	page, size = Paging(map[string][]string{"page": {"-1"}, "size": {"zero"}})
	is.Equal(page, 0)
	is.Equal(size, DefaultPageSize)
}

func collection(id int64, label string) features.FeatureCollection {
	return features.NewFeatureCollection(features.Assigned(id), label, values.NewObject())
}

func readerMock(fc features.FeatureCollection, data ...features.Feature) *FeaturesReaderMock {
	return &FeaturesReaderMock{
		GetCollectionFunc: func(ctx context.Context, collectionID int64) (features.FeatureCollection, error) {
			if id, _ := fc.ID.Int(); id != collectionID {
				return features.FeatureCollection{}, ErrNotFound
			}
			return fc, nil
		},
		QueryFeaturesFunc: func(ctx context.Context, conditions ...ConditionFunc) (QueryResult[features.Feature], error) {
			return QueryResult[features.Feature]{
				Data:       data,
				Count:      len(data),
				TotalCount: int64(len(data)),
			}, nil
		},
	}
}

func msgCtxMock() *messaging.MsgContextMock {
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
}

// storeCollection assigns ids the way storage does, features numbered from 101.
func storeCollection(id int64, fc features.FeatureCollection) features.FeatureCollection {
	created := features.NewFeatureCollection(features.Assigned(id), fc.Label, fc.Properties)
	for i, f := range fc.Features {
		f.ID = features.Assigned(int64(101 + i))
		created.Features = append(created.Features, f)
	}
	return created
}

func applyConditions(conditions ...ConditionFunc) map[string]any {
	m := make(map[string]any)
	for _, f := range conditions {
		m = f(m)
	}
	return m
}

const fieldsConfig string = `
fields:
  - name: id
    column: id
    kind: integer
  - name: status
    property: status
`

const csvData string = `collection;longitude;latitude;properties
benches;17.3069;62.3908;{'kind':'wood'}
benches;17.3071;62.3911;{'kind':'stone'}
existing;17.1;62.1;
playgrounds;17.2;62.2;
`
