package storage

import (
	"context"
	"fmt"

	app "github.com/diwise/geo-features/internal/app/geofeatures"
	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb/encoding/wkt"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (Storage, error) {
	p, err := connect(ctx, cfg)
	if err != nil {
		return Storage{}, err
	}

	err = initialize(ctx, p)
	if err != nil {
		return Storage{}, err
	}

	return Storage{
		pool: p,
	}, nil
}

func (s Storage) Close() {
	s.pool.Close()
}

func initialize(ctx context.Context, pool *pgxpool.Pool) error {
	log := logging.GetFromContext(ctx)

	// properties are stored as json, not jsonb, to keep the member order
	ddl := `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS features_collection (
		id          BIGSERIAL,
		label       TEXT NOT NULL,
		properties  JSON NOT NULL DEFAULT '{}'::json,
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS features_collection_label_idx ON features_collection (label);

	CREATE TABLE IF NOT EXISTS feature (
		id          BIGSERIAL,
		properties  JSON NOT NULL DEFAULT '{}'::json,
		geometry    geometry(Geometry, 4326) NOT NULL,
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	);

	CREATE INDEX IF NOT EXISTS feature_geometry_idx ON feature USING GIST(geometry);

	CREATE TABLE IF NOT EXISTS features_in_collection (
		feature_id    BIGINT NOT NULL REFERENCES feature(id) ON DELETE CASCADE,
		collection_id BIGINT NOT NULL REFERENCES features_collection(id) ON DELETE CASCADE,
		PRIMARY KEY (feature_id, collection_id)
	);

	CREATE INDEX IF NOT EXISTS features_in_collection_idx ON features_in_collection (collection_id, feature_id);
	`

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return err
	}

	_, err = tx.Exec(ctx, ddl)
	if err != nil {
		log.Error("could not execute ddl statement", "err", err.Error())
		tx.Rollback(ctx)
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return err
	}

	return nil
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return conn, err
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateCollection stores the collection together with its features in a
// single transaction. Nothing is stored if any of the inserts fail.
func (s Storage) CreateCollection(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error) {
	log := logging.GetFromContext(ctx)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return features.FeatureCollection{}, classify(err)
	}
	defer tx.Rollback(ctx)

	created, err := insertCollection(ctx, tx, fc)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			log.Debug("collection label already in use", "label", fc.Label)
		} else {
			log.Error("could not create collection", "err", err.Error())
		}
		return features.FeatureCollection{}, classify(err)
	}

	collectionID, _ := created.ID.Int()

	for _, f := range fc.Features {
		stored, err := insertFeature(ctx, tx, collectionID, f)
		if err != nil {
			log.Error("could not create feature, collection rolled back", "label", fc.Label, "err", err.Error())
			return features.FeatureCollection{}, classify(err)
		}
		created.Features = append(created.Features, stored)
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return features.FeatureCollection{}, classify(err)
	}

	return created, nil
}

func insertCollection(ctx context.Context, q querier, fc features.FeatureCollection) (features.FeatureCollection, error) {
	insert := `INSERT INTO features_collection(label, properties) VALUES (@label, @properties::json) RETURNING id, label, properties::text;`

	return scanCollection(q.QueryRow(ctx, insert, pgx.NamedArgs{
		"label":      fc.Label,
		"properties": values.Encode(fc.Properties),
	}))
}

func (s Storage) UpdateCollection(ctx context.Context, fc features.FeatureCollection) (features.FeatureCollection, error) {
	log := logging.GetFromContext(ctx)

	id, ok := fc.ID.Int()
	if !ok {
		return features.FeatureCollection{}, values.MissingField("id")
	}

	update := `UPDATE features_collection SET label=@label, properties=@properties::json, modified_on=CURRENT_TIMESTAMP WHERE id=@id RETURNING id, label, properties::text;`

	row := s.pool.QueryRow(ctx, update, pgx.NamedArgs{
		"id":         id,
		"label":      fc.Label,
		"properties": values.Encode(fc.Properties),
	})

	updated, err := scanCollection(row)
	if err != nil {
		log.Debug("could not update collection", "id", id, "err", err.Error())
		return features.FeatureCollection{}, classify(err)
	}

	return updated, nil
}

func (s Storage) GetCollection(ctx context.Context, collectionID int64) (features.FeatureCollection, error) {
	query := `SELECT id, label, properties::text FROM features_collection WHERE id=@id;`

	fc, err := scanCollection(s.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": collectionID}))
	if err != nil {
		return features.FeatureCollection{}, fmt.Errorf("collection %d: %w", collectionID, classify(err))
	}

	return fc, nil
}

func (s Storage) GetCollectionByLabel(ctx context.Context, label string) (features.FeatureCollection, error) {
	query := `SELECT id, label, properties::text FROM features_collection WHERE label=@label;`

	fc, err := scanCollection(s.pool.QueryRow(ctx, query, pgx.NamedArgs{"label": label}))
	if err != nil {
		return features.FeatureCollection{}, fmt.Errorf("collection %s: %w", label, classify(err))
	}

	return fc, nil
}

func (s Storage) QueryCollections(ctx context.Context, conditions ...app.ConditionFunc) (app.QueryResult[features.FeatureCollection], error) {
	log := logging.GetFromContext(ctx)

	where, args := newQueryCollectionsParams(conditions...)

	query := `SELECT id, label, properties::text, count(*) OVER () AS total_count FROM features_collection ` + where

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		log.Error("could not query collections", "err", err.Error())
		return app.QueryResult[features.FeatureCollection]{}, classify(err)
	}
	defer rows.Close()

	var id, total int64
	var label, properties string

	collections := []features.FeatureCollection{}

	for rows.Next() {
		err := rows.Scan(&id, &label, &properties, &total)
		if err != nil {
			log.Error("could not scan row", "err", err.Error())
			return app.QueryResult[features.FeatureCollection]{}, classify(err)
		}

		fc, err := features.CollectionFromRow(id, label, properties)
		if err != nil {
			log.Error("stored collection could not be parsed", "id", id, "err", err.Error())
			return app.QueryResult[features.FeatureCollection]{}, fmt.Errorf("%w: %s", ErrPersistence, err.Error())
		}

		collections = append(collections, fc)
	}

	if err := rows.Err(); err != nil {
		return app.QueryResult[features.FeatureCollection]{}, classify(err)
	}

	return app.QueryResult[features.FeatureCollection]{
		Data:       collections,
		Count:      len(collections),
		Limit:      args["limit"].(int),
		Offset:     args["offset"].(int),
		TotalCount: total,
	}, nil
}

func (s Storage) CreateFeature(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error) {
	created, err := insertFeature(ctx, s.pool, collectionID, f)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not create feature", "collection_id", collectionID, "err", err.Error())
		return features.Feature{}, classify(err)
	}

	return created, nil
}

func insertFeature(ctx context.Context, q querier, collectionID int64, f features.Feature) (features.Feature, error) {
	insert := `
	WITH insert_feature AS (
		INSERT INTO feature(properties, geometry)
		VALUES (@properties::json, ST_GeomFromText(@geometry, 4326))
		RETURNING id, properties, geometry
	), insert_features_in_collection AS (
		INSERT INTO features_in_collection(feature_id, collection_id)
		SELECT id, @collection_id FROM insert_feature
	)
	SELECT id, properties::text, ST_AsGeoJSON(geometry) FROM insert_feature;`

	return scanFeature(q.QueryRow(ctx, insert, pgx.NamedArgs{
		"properties":    values.Encode(f.Properties),
		"geometry":      wkt.MarshalString(f.Geometry.Orb()),
		"collection_id": collectionID,
	}))
}

func (s Storage) UpdateFeature(ctx context.Context, collectionID int64, f features.Feature) (features.Feature, error) {
	log := logging.GetFromContext(ctx)

	featureID, ok := f.ID.Int()
	if !ok {
		return features.Feature{}, values.MissingField("id")
	}

	update := `
	WITH update_feature AS (
		UPDATE feature
		SET properties=@properties::json, geometry=ST_GeomFromText(@geometry, 4326), modified_on=CURRENT_TIMESTAMP
		WHERE id=@feature_id
		RETURNING id, properties, geometry
	), insert_features_in_collection AS (
		INSERT INTO features_in_collection(feature_id, collection_id)
		SELECT id, @collection_id FROM update_feature
		ON CONFLICT (feature_id, collection_id) DO NOTHING
	)
	SELECT id, properties::text, ST_AsGeoJSON(geometry) FROM update_feature;`

	row := s.pool.QueryRow(ctx, update, pgx.NamedArgs{
		"feature_id":    featureID,
		"properties":    values.Encode(f.Properties),
		"geometry":      wkt.MarshalString(f.Geometry.Orb()),
		"collection_id": collectionID,
	})

	updated, err := scanFeature(row)
	if err != nil {
		log.Debug("could not update feature", "feature_id", featureID, "err", err.Error())
		return features.Feature{}, classify(err)
	}

	return updated, nil
}

func (s Storage) QueryFeatures(ctx context.Context, conditions ...app.ConditionFunc) (app.QueryResult[features.Feature], error) {
	log := logging.GetFromContext(ctx)

	q, err := newQueryFeaturesParams(conditions...)
	if err != nil {
		return app.QueryResult[features.Feature]{}, err
	}

	rows, err := s.pool.Query(ctx, q.sql, q.args...)
	if err != nil {
		log.Error("could not query features", "err", err.Error())
		return app.QueryResult[features.Feature]{}, classify(err)
	}
	defer rows.Close()

	var id, total int64
	var properties, geometry string

	result := []features.Feature{}

	for rows.Next() {
		err := rows.Scan(&id, &properties, &geometry, &total)
		if err != nil {
			log.Error("could not scan row", "err", err.Error())
			return app.QueryResult[features.Feature]{}, classify(err)
		}

		f, err := features.FeatureFromRow(id, properties, geometry)
		if err != nil {
			log.Error("stored feature could not be parsed", "id", id, "err", err.Error())
			return app.QueryResult[features.Feature]{}, fmt.Errorf("%w: %s", ErrPersistence, err.Error())
		}

		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		log.Error("could not query features", "err", err.Error())
		return app.QueryResult[features.Feature]{}, classify(err)
	}

	return app.QueryResult[features.Feature]{
		Data:       result,
		Count:      len(result),
		Limit:      q.limit,
		Offset:     q.offset,
		TotalCount: total,
	}, nil
}

func (s Storage) QueryFeaturesByProperty(ctx context.Context, name, value string) ([]app.CollectionFeature, error) {
	log := logging.GetFromContext(ctx)

	query := `
	SELECT fic.collection_id, f.id, f.properties::text, ST_AsGeoJSON(f.geometry)
	FROM feature f
	INNER JOIN features_in_collection fic ON fic.feature_id = f.id
	WHERE f.properties->>@name = @value
	ORDER BY fic.collection_id, f.id
	LIMIT @limit;`

	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{
		"name":  name,
		"value": value,
		"limit": app.MaxPageSize,
	})
	if err != nil {
		log.Error("could not query features by property", "name", name, "err", err.Error())
		return nil, classify(err)
	}
	defer rows.Close()

	var collectionID, id int64
	var properties, geometry string

	result := []app.CollectionFeature{}

	for rows.Next() {
		err := rows.Scan(&collectionID, &id, &properties, &geometry)
		if err != nil {
			log.Error("could not scan row", "err", err.Error())
			return nil, classify(err)
		}

		f, err := features.FeatureFromRow(id, properties, geometry)
		if err != nil {
			log.Error("stored feature could not be parsed", "id", id, "err", err.Error())
			return nil, fmt.Errorf("%w: %s", ErrPersistence, err.Error())
		}

		result = append(result, app.CollectionFeature{CollectionID: collectionID, Feature: f})
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return result, nil
}

func scanCollection(row pgx.Row) (features.FeatureCollection, error) {
	var id int64
	var label, properties string

	err := row.Scan(&id, &label, &properties)
	if err != nil {
		return features.FeatureCollection{}, err
	}

	return features.CollectionFromRow(id, label, properties)
}

func scanFeature(row pgx.Row) (features.Feature, error) {
	var id int64
	var properties, geometry string

	err := row.Scan(&id, &properties, &geometry)
	if err != nil {
		return features.Feature{}, err
	}

	return features.FeatureFromRow(id, properties, geometry)
}
