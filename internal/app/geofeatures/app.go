package geofeatures

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/app/geofeatures/filters"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/diwise/geo-features/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

//go:generate moq -rm -out app_mock.go . FeaturesApp
type FeaturesApp interface {
	CreateCollection(ctx context.Context, b []byte) (features.FeatureCollection, error)
	UpdateCollection(ctx context.Context, b []byte) (features.FeatureCollection, error)
	QueryCollections(ctx context.Context, params map[string][]string) (QueryResult[features.FeatureCollection], error)
	GetCollection(ctx context.Context, collectionID int64) (features.FeatureCollection, error)

	CreateFeature(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error)
	UpdateFeature(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error)
	QueryFeatures(ctx context.Context, collectionID int64, params map[string][]string) (features.FeatureCollection, error)
	QueryFeaturesInBbox(ctx context.Context, collectionID int64, bbox features.Bbox, params map[string][]string) (features.FeatureCollection, error)
	GetFeature(ctx context.Context, collectionID, featureID int64) (features.FeatureCollection, error)
	FilterFeatures(ctx context.Context, collectionID int64, b []byte, params map[string][]string) (features.FeatureCollection, error)

	MoveDeviceFeatures(ctx context.Context, deviceID string, position features.Point) (int, error)

	Seed(ctx context.Context, r io.Reader) error
	LoadConfig(ctx context.Context, r io.Reader) error
}

//go:generate moq -rm -out reader_mock.go . FeaturesReader
type FeaturesReader interface {
	QueryCollections(ctx context.Context, conditions ...ConditionFunc) (QueryResult[features.FeatureCollection], error)
	GetCollection(ctx context.Context, collectionID int64) (features.FeatureCollection, error)
	GetCollectionByLabel(ctx context.Context, label string) (features.FeatureCollection, error)
	QueryFeatures(ctx context.Context, conditions ...ConditionFunc) (QueryResult[features.Feature], error)
	QueryFeaturesByProperty(ctx context.Context, name, value string) ([]CollectionFeature, error)
}

//go:generate moq -rm -out writer_mock.go . FeaturesWriter
type FeaturesWriter interface {
	CreateCollection(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error)
	UpdateCollection(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error)
	CreateFeature(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error)
	UpdateFeature(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error)
}

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")
var ErrPersistence = errors.New("persistence failure")
var ErrCollectionMismatch = errors.New("filter collection does not match the requested collection")

// DeviceProperty names the feature property that ties a feature to a sensor.
const DeviceProperty string = "device_id"

// CollectionFeature is a feature together with a collection it belongs to.
type CollectionFeature struct {
	CollectionID int64
	Feature      features.Feature
}

// the collection id is bound to $1 in every feature query
const firstPredicatePlaceholder int = 2

type app struct {
	reader   FeaturesReader
	writer   FeaturesWriter
	msgCtx   messaging.MsgContext
	compiler atomic.Pointer[filters.Compiler]
}

func New(r FeaturesReader, w FeaturesWriter, msgCtx messaging.MsgContext) FeaturesApp {
	a := &app{
		reader: r,
		writer: w,
		msgCtx: msgCtx,
	}

	c, _ := filters.NewCompiler(filters.DefaultFields...)
	a.compiler.Store(c)

	return a
}

// LoadConfig replaces the fields that filters are allowed to reference.
func (a *app) LoadConfig(ctx context.Context, r io.Reader) error {
	fields, err := filters.LoadFields(r)
	if err != nil {
		return err
	}

	c, err := filters.NewCompiler(fields...)
	if err != nil {
		return err
	}

	a.compiler.Store(c)

	logging.GetFromContext(ctx).Debug("loaded filter fields", "fields", strings.Join(c.Fields(), ","))

	return nil
}

func (a *app) CreateCollection(ctx context.Context, b []byte) (features.FeatureCollection, error) {
	fc, err := features.ParseFeatureCollectionText(string(b))
	if err != nil {
		return features.FeatureCollection{}, err
	}

	created, err := a.writer.CreateCollection(ctx, fc)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	collectionID, _ := created.ID.Int()

	for _, f := range created.Features {
		a.publish(ctx, types.FeatureCreated, collectionID, f)
	}

	return created, nil
}

func (a *app) UpdateCollection(ctx context.Context, b []byte) (features.FeatureCollection, error) {
	fc, err := features.ParseFeatureCollectionText(string(b))
	if err != nil {
		return features.FeatureCollection{}, err
	}

	if !fc.ID.IsAssigned() {
		return features.FeatureCollection{}, values.MissingField("id")
	}

	return a.writer.UpdateCollection(ctx, fc)
}

func (a *app) QueryCollections(ctx context.Context, params map[string][]string) (QueryResult[features.FeatureCollection], error) {
	return a.reader.QueryCollections(ctx, WithParams(params)...)
}

func (a *app) GetCollection(ctx context.Context, collectionID int64) (features.FeatureCollection, error) {
	return a.reader.GetCollection(ctx, collectionID)
}

func (a *app) CreateFeature(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error) {
	f, err := features.ParseFeatureText(string(b))
	if err != nil {
		return features.FeatureCollection{}, err
	}

	fc, err := a.reader.GetCollection(ctx, collectionID)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	stored, err := a.writer.CreateFeature(ctx, collectionID, f)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	a.publish(ctx, types.FeatureCreated, collectionID, stored)

	fc.Features = []features.Feature{stored}
	return fc, nil
}

func (a *app) UpdateFeature(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error) {
	f, err := features.ParseFeatureText(string(b))
	if err != nil {
		return features.FeatureCollection{}, err
	}

	if !f.ID.IsAssigned() {
		return features.FeatureCollection{}, values.MissingField("id")
	}

	fc, err := a.reader.GetCollection(ctx, collectionID)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	stored, err := a.writer.UpdateFeature(ctx, collectionID, f)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	a.publish(ctx, types.FeatureChanged, collectionID, stored)

	fc.Features = []features.Feature{stored}
	return fc, nil
}

func (a *app) QueryFeatures(ctx context.Context, collectionID int64, params map[string][]string) (features.FeatureCollection, error) {
	return a.queryFeaturesInCollection(ctx, collectionID, WithParams(params)...)
}

func (a *app) QueryFeaturesInBbox(ctx context.Context, collectionID int64, bbox features.Bbox, params map[string][]string) (features.FeatureCollection, error) {
	return a.queryFeaturesInCollection(ctx, collectionID, append(WithParams(params), WithBbox(bbox))...)
}

func (a *app) GetFeature(ctx context.Context, collectionID, featureID int64) (features.FeatureCollection, error) {
	fc, err := a.queryFeaturesInCollection(ctx, collectionID, WithFeatureID(featureID), WithLimit(1))
	if err != nil {
		return features.FeatureCollection{}, err
	}

	if len(fc.Features) == 0 {
		return features.FeatureCollection{}, fmt.Errorf("%w: feature %d in collection %d", ErrNotFound, featureID, collectionID)
	}

	return fc, nil
}

func (a *app) FilterFeatures(ctx context.Context, collectionID int64, b []byte, params map[string][]string) (features.FeatureCollection, error) {
	f, err := filters.ParseText(string(b))
	if err != nil {
		return features.FeatureCollection{}, err
	}

	if f.CollectionID != collectionID {
		return features.FeatureCollection{}, fmt.Errorf("%w: %d != %d", ErrCollectionMismatch, f.CollectionID, collectionID)
	}

	p, err := a.compiler.Load().CompileFrom(f.Expression, firstPredicatePlaceholder)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	return a.queryFeaturesInCollection(ctx, collectionID, append(WithParams(params), WithPredicate(p))...)
}

func (a *app) queryFeaturesInCollection(ctx context.Context, collectionID int64, conditions ...ConditionFunc) (features.FeatureCollection, error) {
	fc, err := a.reader.GetCollection(ctx, collectionID)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	result, err := a.reader.QueryFeatures(ctx, append(conditions, WithCollectionID(collectionID))...)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	fc.Features = result.Data
	return fc, nil
}

// MoveDeviceFeatures sets the geometry of every feature tagged with deviceID to
// position and returns the number of features that moved.
func (a *app) MoveDeviceFeatures(ctx context.Context, deviceID string, position features.Point) (int, error) {
	log := logging.GetFromContext(ctx)

	found, err := a.reader.QueryFeaturesByProperty(ctx, DeviceProperty, deviceID)
	if err != nil {
		return 0, err
	}

	moved := 0
	var errs []error

	for _, cf := range found {
		if cf.Feature.Geometry == features.Geometry(position) {
			continue
		}

		f := cf.Feature
		f.Geometry = position

		stored, err := a.writer.UpdateFeature(ctx, cf.CollectionID, f)
		if err != nil {
			log.Error("could not move feature", "device_id", deviceID, "err", err.Error())
			errs = append(errs, err)
			continue
		}

		a.publish(ctx, types.FeatureChanged, cf.CollectionID, stored)
		moved++
	}

	return moved, errors.Join(errs...)
}

func (a *app) publish(ctx context.Context, action string, collectionID int64, f features.Feature) {
	log := logging.GetFromContext(ctx)

	featureID, _ := f.ID.Int()

	msg := &types.FeatureUpdated{
		EventID:      uuid.NewString(),
		Action:       action,
		CollectionID: collectionID,
		FeatureID:    featureID,
		Feature:      []byte(f.GeoJSON()),
		Timestamp:    time.Now().UTC(),
	}

	err := a.msgCtx.PublishOnTopic(ctx, msg)
	if err != nil {
		log.Error("could not publish feature update", "feature_id", featureID, "err", err.Error())
	}
}

// Seed reads a ';' separated file with a header row and the columns
//
//	collection;longitude;latitude;properties
//
// Every row is validated before anything is stored. Collections are looked up
// by label and only those that are missing are created, each together with
// its features, so seeding twice is harmless.
func (a *app) Seed(ctx context.Context, r io.Reader) error {
	log := logging.GetFromContext(ctx)

	f := csv.NewReader(r)
	f.Comma = ';'
	f.FieldsPerRecord = -1
	rowNum := 0

	coordinate := func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}

	properties := func(s string) (values.Object, error) {
		if strings.TrimSpace(s) == "" {
			return values.NewObject(), nil
		}
		s = strings.ReplaceAll(s, "'", "\"")
		return values.ParseObject(s)
	}

	labels := []string{}
	seeds := map[string][]features.Feature{}

	for {
		record, err := f.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		rowNum++
		if rowNum == 1 {
			continue
		}

		//      0           1          2          3
		// collection, longitude, latitude, properties

		if len(record) < 3 {
			return fmt.Errorf("row %d: expected at least 3 columns, got %d", rowNum, len(record))
		}

		label_ := strings.TrimSpace(record[0])
		if label_ == "" {
			continue
		}

		lon_, err := coordinate(record[1])
		if err != nil {
			return fmt.Errorf("row %d: %w: invalid longitude %q", rowNum, features.ErrMalformedGeometry, record[1])
		}
		lat_, err := coordinate(record[2])
		if err != nil {
			return fmt.Errorf("row %d: %w: invalid latitude %q", rowNum, features.ErrMalformedGeometry, record[2])
		}

		props_ := values.NewObject()
		if len(record) > 3 {
			props_, err = properties(record[3])
			if err != nil {
				return fmt.Errorf("row %d: invalid properties: %w", rowNum, err)
			}
		}

		if _, ok := seeds[label_]; !ok {
			labels = append(labels, label_)
		}
		seeds[label_] = append(seeds[label_], features.NewFeature(features.Unassigned, features.NewPoint(lon_, lat_), props_))
	}

	for _, label := range labels {
		_, err := a.reader.GetCollectionByLabel(ctx, label)
		if err == nil {
			log.Debug("collection already exists, will not seed it", "label", label)
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}

		fc := features.NewFeatureCollection(features.Unassigned, label, values.NewObject())
		fc.Features = seeds[label]

		created, err := a.writer.CreateCollection(ctx, fc)
		if err != nil {
			return err
		}

		collectionID, _ := created.ID.Int()
		for _, stored := range created.Features {
			a.publish(ctx, types.FeatureCreated, collectionID, stored)
		}
	}

	return nil
}
