package geofeatures

import (
	"context"
	"log/slog"
	"testing"

	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestMeasurementWithPositionMovesFeatures(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := &FeaturesAppMock{
		MoveDeviceFeaturesFunc: func(ctx context.Context, deviceID string, position features.Point) (int, error) {
			return 1, nil
		},
	}

	NewMeasurementsHandler(a)(ctx, msgMock(distanceMsg), slog.Default())

	is.Equal(len(a.MoveDeviceFeaturesCalls()), 1)
	is.Equal(a.MoveDeviceFeaturesCalls()[0].DeviceID, "9fb5801ebafc")
	is.Equal(a.MoveDeviceFeaturesCalls()[0].Position, features.NewPoint(17, 62))
}

func TestMeasurementWithoutFixIsIgnored(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := &FeaturesAppMock{}

	NewMeasurementsHandler(a)(ctx, msgMock(temperatureMsg), slog.Default())
	NewMeasurementsHandler(a)(ctx, msgMock(`{"pack":`), slog.Default())

	is.Equal(len(a.MoveDeviceFeaturesCalls()), 0)
}

func TestMoveDeviceFeatures(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	tagged := values.NewObject(values.Member{Name: DeviceProperty, Value: values.String("9fb5801ebafc")})

	r := &FeaturesReaderMock{
		QueryFeaturesByPropertyFunc: func(ctx context.Context, name, value string) ([]CollectionFeature, error) {
			return []CollectionFeature{
				{CollectionID: 1, Feature: features.NewFeature(features.Assigned(10), features.NewPoint(1, 1), tagged)},
				{CollectionID: 2, Feature: features.NewFeature(features.Assigned(11), features.NewPoint(17, 62), tagged)},
			}, nil
		},
	}
	w := &FeaturesWriterMock{
		UpdateFeatureFunc: func(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error) {
			return f, nil
		},
	}
	m := msgCtxMock()

	moved, err := New(r, w, m).MoveDeviceFeatures(ctx, "9fb5801ebafc", features.NewPoint(17, 62))
	is.NoErr(err)
	is.Equal(moved, 1)

	is.Equal(r.QueryFeaturesByPropertyCalls()[0].Name, DeviceProperty)
	is.Equal(r.QueryFeaturesByPropertyCalls()[0].Value, "9fb5801ebafc")

	is.Equal(len(w.UpdateFeatureCalls()), 1)
	is.Equal(w.UpdateFeatureCalls()[0].CollectionID, int64(1))
	is.Equal(w.UpdateFeatureCalls()[0].F.Geometry, features.Geometry(features.NewPoint(17, 62)))
	is.Equal(len(m.PublishOnTopicCalls()), 1)
}

func msgMock(body string) *messaging.IncomingTopicMessageMock {
	return &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(body)
		},
		TopicNameFunc: func() string {
			return "message.accepted"
		},
		ContentTypeFunc: func() string {
			return "application/json"
		},
	}
}

var (
	temperatureMsg = `{"pack":[{"bn":"c5a2ae17c239/3303/","bt":1730124834,"n":"0","vs":"urn:oma:lwm2m:ext:3303"},{"n":"5700","u":"Cel","v":21},{"u":"lat","v":0},{"u":"lon","v":0},{"n":"tenant","vs":"default"}],"timestamp":"2024-10-28T14:13:54.532480028Z"}`
	distanceMsg    = `{"pack":[{"bn":"9fb5801ebafc/3330/","bt":1730124849,"n":"0","vs":"urn:oma:lwm2m:ext:3330"},{"n":"5700","u":"m","v":2.51},{"n":"5701","vs":"metre"},{"u":"lat","v":62},{"u":"lon","v":17},{"n":"tenant","vs":"default"}],"timestamp":"2024-10-28T14:14:09.424249918Z"}`
)
