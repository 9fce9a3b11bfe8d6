package storage

import (
	"errors"
	"strconv"
	"strings"

	app "github.com/diwise/geo-features/internal/app/geofeatures"
	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/app/geofeatures/filters"
	"github.com/jackc/pgx/v5"
)

var errMissingCollectionID = errors.New("query features requires a collection id")

func newConditions(conditions ...app.ConditionFunc) map[string]any {
	m := make(map[string]any)

	for _, f := range conditions {
		m = f(m)
	}

	if _, ok := m["limit"]; !ok {
		m["limit"] = app.DefaultPageSize
	}

	if _, ok := m["offset"]; !ok {
		m["offset"] = 0
	}

	return m
}

func newQueryCollectionsParams(conditions ...app.ConditionFunc) (string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["collection_id"]; ok {
		query += " AND id=@id"
		args["id"] = id
	}

	query += " ORDER BY id"

	query += " OFFSET @offset"
	args["offset"] = c["offset"]

	query += " LIMIT @limit"
	args["limit"] = c["limit"]

	return query, args
}

type featuresQuery struct {
	sql    string
	args   []any
	offset int
	limit  int
}

func (q *featuresQuery) bind(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

// newQueryFeaturesParams builds a positional statement. The collection id is
// bound to $1 and a compiled predicate, numbered from $2, follows directly.
func newQueryFeaturesParams(conditions ...app.ConditionFunc) (featuresQuery, error) {
	c := newConditions(conditions...)

	collectionID, ok := c["collection_id"]
	if !ok {
		return featuresQuery{}, errMissingCollectionID
	}

	q := featuresQuery{
		offset: c["offset"].(int),
		limit:  c["limit"].(int),
	}

	var sb strings.Builder

	sb.WriteString(`SELECT id, properties::text, ST_AsGeoJSON(geometry), count(*) OVER () AS total_count
	FROM (
		SELECT f.id, f.properties, f.geometry
		FROM feature f
		INNER JOIN features_in_collection fic ON fic.feature_id = f.id
		WHERE fic.collection_id = `)
	sb.WriteString(q.bind(collectionID))
	sb.WriteString(`
	) AS features
	WHERE 1=1`)

	if p, ok := c["predicate"].(filters.Predicate); ok {
		sb.WriteString(" AND (" + p.SQL + ")")
		q.args = append(q.args, p.Args...)
	}

	if featureID, ok := c["feature_id"]; ok {
		sb.WriteString(" AND id = " + q.bind(featureID))
	}

	if bbox, ok := c["bbox"].(features.Bbox); ok {
		sb.WriteString(" AND ST_Intersects(ST_GeomFromText(" + q.bind(bbox.WKT()) + ", 4326), geometry)")
	}

	sb.WriteString(" ORDER BY id")
	sb.WriteString(" OFFSET " + q.bind(q.offset))
	sb.WriteString(" LIMIT " + q.bind(q.limit))

	q.sql = sb.String()

	return q, nil
}
