package geofeatures

import (
	"strconv"
	"strings"

	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/app/geofeatures/filters"
)

const (
	DefaultPageSize int = 10
	MaxPageSize     int = 1000
)

type ConditionFunc func(map[string]any) map[string]any

type QueryResult[T any] struct {
	Data       []T
	Count      int
	Limit      int
	Offset     int
	TotalCount int64
}

func WithCollectionID(collectionID int64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["collection_id"] = collectionID
		return m
	}
}

func WithFeatureID(featureID int64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["feature_id"] = featureID
		return m
	}
}

func WithBbox(bbox features.Bbox) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["bbox"] = bbox
		return m
	}
}

// WithPredicate expects a predicate compiled with its first placeholder at $2,
// the collection id is always bound to $1.
func WithPredicate(p filters.Predicate) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["predicate"] = p
		return m
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["offset"] = offset
		return m
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["limit"] = limit
		return m
	}
}

// WithParams translates page and size query parameters into offset and limit.
func WithParams(query map[string][]string) []ConditionFunc {
	page, size := Paging(query)
	return []ConditionFunc{
		WithOffset(page * size),
		WithLimit(size),
	}
}

// Paging returns page (default 0) and size (default 10, at most 1000).
func Paging(query map[string][]string) (int, int) {
	params := map[string][]string{}
	for k, v := range query {
		params[strings.ToLower(k)] = v
	}

	atoi := func(key string, def int) int {
		v, ok := params[key]
		if !ok || len(v) == 0 {
			return def
		}
		i, err := strconv.Atoi(v[0])
		if err != nil {
			return def
		}
		return i
	}

	page := max(atoi("page", 0), 0)
	size := atoi("size", DefaultPageSize)

	if size <= 0 {
		size = DefaultPageSize
	}

	return page, min(size, MaxPageSize)
}
