package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	app "github.com/diwise/geo-features/internal/app/geofeatures"
	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/app/geofeatures/filters"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/matryer/is"
)

func TestCreateFeature(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.CreateFeatureFunc = func(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error) {
		fc := wells()
		fc.Features = []features.Feature{features.NewFeature(features.Assigned(1), features.NewPoint(17.5, 62), values.NewObject())}
		return fc, nil
	}

	resp, body := testRequest(server, http.MethodPost, "/api/v0/collections/5/items", nil, strings.NewReader(`{"type":"Feature"}`))
	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(resp.Header.Get("Content-Type"), GeoJSONContentType)
	is.True(strings.Contains(body, `"coordinates":[17.5,62.0]`))

	is.Equal(len(a.CreateFeatureCalls()), 1)
	is.Equal(a.CreateFeatureCalls()[0].CollectionID, int64(5))
	is.Equal(string(a.CreateFeatureCalls()[0].B), `{"type":"Feature"}`)
}

func TestFeatureRoutesAcceptSingularItem(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.CreateFeatureFunc = func(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error) {
		return wells(), nil
	}
	a.UpdateFeatureFunc = func(ctx context.Context, collectionID int64, b []byte) (features.FeatureCollection, error) {
		return wells(), nil
	}

	resp, _ := testRequest(server, http.MethodPost, "/api/v0/collections/5/item", nil, strings.NewReader(`{"type":"Feature"}`))
	is.Equal(resp.StatusCode, http.StatusCreated)

	resp, _ = testRequest(server, http.MethodPut, "/api/v0/collections/5/item", nil, strings.NewReader(`{"type":"Feature","id":1}`))
	is.Equal(resp.StatusCode, http.StatusOK)

	is.Equal(len(a.CreateFeatureCalls()), 1)
	is.Equal(a.UpdateFeatureCalls()[0].CollectionID, int64(5))
}

func TestInvalidCollectionID(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, _ := testRequest(server, http.MethodGet, "/api/v0/collections/abc", nil, nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestGetFeatureNotFound(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.GetFeatureFunc = func(ctx context.Context, collectionID, featureID int64) (features.FeatureCollection, error) {
		return features.FeatureCollection{}, fmt.Errorf("feature %d: %w", featureID, app.ErrNotFound)
	}

	resp, _ := testRequest(server, http.MethodGet, "/api/v0/collections/5/items/8", nil, nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(a.GetFeatureCalls()[0].FeatureID, int64(8))
}

func TestCreateCollectionConflict(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.CreateCollectionFunc = func(ctx context.Context, b []byte) (features.FeatureCollection, error) {
		return features.FeatureCollection{}, app.ErrAlreadyExists
	}

	resp, _ := testRequest(server, http.MethodPost, "/api/v0/collections", nil, strings.NewReader(`{"label":"wells"}`))
	is.Equal(resp.StatusCode, http.StatusConflict)
}

func TestUpdateCollectionBadRequest(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.UpdateCollectionFunc = func(ctx context.Context, b []byte) (features.FeatureCollection, error) {
		return features.FeatureCollection{}, values.MissingField("id")
	}

	resp, body := testRequest(server, http.MethodPut, "/api/v0/collections", nil, strings.NewReader(`{"label":"wells"}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, "missing field: id")
}

func TestFilterFeaturesUnknownField(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.FilterFeaturesFunc = func(ctx context.Context, collectionID int64, b []byte, params map[string][]string) (features.FeatureCollection, error) {
		return features.FeatureCollection{}, fmt.Errorf("%w: colour", filters.ErrUnknownField)
	}

	resp, body := testRequest(server, http.MethodPost, "/api/v0/collections/5/filter/items?page=1&size=5", nil, strings.NewReader(`{}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(body, "unknown field: colour")

	params := a.FilterFeaturesCalls()[0].Params
	is.Equal(params["page"], []string{"1"})
	is.Equal(params["size"], []string{"5"})
}

func TestFilterFeaturesPersistenceFailure(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.FilterFeaturesFunc = func(ctx context.Context, collectionID int64, b []byte, params map[string][]string) (features.FeatureCollection, error) {
		return features.FeatureCollection{}, errors.Join(app.ErrPersistence, errors.New("connection refused"))
	}

	resp, _ := testRequest(server, http.MethodPost, "/api/v0/collections/5/filter/items", nil, strings.NewReader(`{}`))
	is.Equal(resp.StatusCode, http.StatusInternalServerError)
}

func TestQueryFeaturesInBbox(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.QueryFeaturesInBboxFunc = func(ctx context.Context, collectionID int64, bbox features.Bbox, params map[string][]string) (features.FeatureCollection, error) {
		return wells(), nil
	}

	resp, _ := testRequest(server, http.MethodGet, "/api/v0/collections/5/items/-1.5/2/3/4.25", nil, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(a.QueryFeaturesInBboxCalls()[0].Bbox, features.NewBbox(-1.5, 2, 3, 4.25))

	resp, _ = testRequest(server, http.MethodGet, "/api/v0/collections/5/items/a/2/3/4", nil, nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestQueryFeaturesAsFlatGeobuf(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.QueryFeaturesFunc = func(ctx context.Context, collectionID int64, params map[string][]string) (features.FeatureCollection, error) {
		fc := wells()
		fc.Features = []features.Feature{
			features.NewFeature(features.Assigned(1), features.NewPoint(17.3, 62.3), values.NewObject(
				values.Member{Name: "status", Value: values.String("open")},
			)),
		}
		return fc, nil
	}

	headers := map[string]string{"Accept": "application/flatgeobuf"}

	resp, body := testRequest(server, http.MethodGet, "/api/v0/collections/5/items", headers, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/flatgeobuf")
	is.True(bytes.HasPrefix([]byte(body), []byte{0x66, 0x67, 0x62, 0x03}))
}

func TestQueryCollections(t *testing.T) {
	is, a, server := setupTest(t)
	defer server.Close()

	a.QueryCollectionsFunc = func(ctx context.Context, params map[string][]string) (app.QueryResult[features.FeatureCollection], error) {
		return app.QueryResult[features.FeatureCollection]{
			Data:       []features.FeatureCollection{wells()},
			Count:      1,
			Limit:      1,
			Offset:     1,
			TotalCount: 3,
		}, nil
	}

	resp, body := testRequest(server, http.MethodGet, "/api/v0/collections?page=1&size=1", nil, nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	response := struct {
		Meta  meta              `json:"meta"`
		Data  []json.RawMessage `json:"data"`
		Links links             `json:"links"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &response))

	is.Equal(response.Meta.TotalRecords, uint64(3))
	is.Equal(len(response.Data), 1)
	is.True(strings.Contains(string(response.Data[0]), `"label":"wells"`))
	is.Equal(*response.Links.Next, "/api/v0/collections?page=2&size=1")
	is.Equal(*response.Links.Prev, "/api/v0/collections?page=0&size=1")
	is.Equal(*response.Links.Last, "/api/v0/collections?page=2&size=1")
}

func TestHealth(t *testing.T) {
	is, _, server := setupTest(t)
	defer server.Close()

	resp, _ := testRequest(server, http.MethodGet, "/health", nil, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
}

func wells() features.FeatureCollection {
	return features.NewFeatureCollection(features.Assigned(5), "wells", values.NewObject())
}

func setupTest(t *testing.T) (*is.I, *app.FeaturesAppMock, *httptest.Server) {
	is := is.New(t)
	a := &app.FeaturesAppMock{}
	server := httptest.NewServer(Register(context.Background(), a))
	return is, a, server
}

func testRequest(ts *httptest.Server, method, path string, headers map[string]string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, ""
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}
