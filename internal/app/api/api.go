package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	app "github.com/diwise/geo-features/internal/app/geofeatures"
	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/app/geofeatures/filters"
	"github.com/diwise/geo-features/internal/pkg/flatgeobuf"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
)

const GeoJSONContentType = "application/geo+json"

var tracer = otel.Tracer("geo-features/api")

var errInvalidID = errors.New("invalid id")

func Register(ctx context.Context, a app.FeaturesApp) *chi.Mux {
	log := logging.GetFromContext(ctx)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api/v0", func(r chi.Router) {
		r.Route("/collections", func(r chi.Router) {
			r.Get("/", queryCollectionsHandler(log, a))
			r.Post("/", createCollectionHandler(log, a))
			r.Put("/", updateCollectionHandler(log, a))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getCollectionHandler(log, a))
				r.Get("/items", queryFeaturesHandler(log, a))
				r.Post("/items", createFeatureHandler(log, a))
				r.Put("/items", updateFeatureHandler(log, a))
				r.Post("/item", createFeatureHandler(log, a))
				r.Put("/item", updateFeatureHandler(log, a))
				r.Get("/items/{featureID}", getFeatureHandler(log, a))
				r.Get("/items/{minLng}/{minLat}/{maxLng}/{maxLat}", queryFeaturesInBboxHandler(log, a))
				r.Post("/filter/items", filterFeaturesHandler(log, a))
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func queryCollectionsHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-collections")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := a.QueryCollections(ctx, r.URL.Query())
		if err != nil {
			writeError(w, logger, "could not query collections", err)
			return
		}

		data := json.RawMessage(values.Encode(features.EncodeFeatureCollections(result.Data)))
		response := NewApiResponse(r, data, uint64(result.Count), uint64(result.TotalCount), uint64(result.Offset), uint64(result.Limit))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func getCollectionHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-collection")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		fc, err := a.GetCollection(ctx, collectionID)
		if err != nil {
			writeError(w, logger, "could not get collection", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func createCollectionHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-collection")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		if isMultipartFormData(r) {
			err = seed(ctx, w, r, a)
			if err != nil {
				writeError(w, logger, "could not seed collections", err)
			}
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, logger, "could not read body", err)
			return
		}

		fc, err := a.CreateCollection(ctx, b)
		if err != nil {
			writeError(w, logger, "could not create collection", err)
			return
		}

		writeCollection(w, r, logger, http.StatusCreated, fc)
	}
}

func updateCollectionHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-collection")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, logger, "could not read body", err)
			return
		}

		fc, err := a.UpdateCollection(ctx, b)
		if err != nil {
			writeError(w, logger, "could not update collection", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func queryFeaturesHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-features")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		fc, err := a.QueryFeatures(ctx, collectionID, r.URL.Query())
		if err != nil {
			writeError(w, logger, "could not query features", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func queryFeaturesInBboxHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-features-in-bbox")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		bbox, err := features.ParseBbox(
			chi.URLParam(r, "minLng"), chi.URLParam(r, "minLat"),
			chi.URLParam(r, "maxLng"), chi.URLParam(r, "maxLat"),
		)
		if err != nil {
			writeError(w, logger, "bad bounding box", err)
			return
		}

		fc, err := a.QueryFeaturesInBbox(ctx, collectionID, bbox, r.URL.Query())
		if err != nil {
			writeError(w, logger, "could not query features in bbox", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func getFeatureHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-feature")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		featureID, err := pathID(r, "featureID")
		if err != nil {
			writeError(w, logger, "bad feature id", err)
			return
		}

		fc, err := a.GetFeature(ctx, collectionID, featureID)
		if err != nil {
			writeError(w, logger, "could not get feature", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func createFeatureHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-feature")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, logger, "could not read body", err)
			return
		}

		fc, err := a.CreateFeature(ctx, collectionID, b)
		if err != nil {
			writeError(w, logger, "could not create feature", err)
			return
		}

		writeCollection(w, r, logger, http.StatusCreated, fc)
	}
}

func updateFeatureHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-feature")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, logger, "could not read body", err)
			return
		}

		fc, err := a.UpdateFeature(ctx, collectionID, b)
		if err != nil {
			writeError(w, logger, "could not update feature", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func filterFeaturesHandler(log *slog.Logger, a app.FeaturesApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "filter-features")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collectionID, err := pathID(r, "id")
		if err != nil {
			writeError(w, logger, "bad collection id", err)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, logger, "could not read body", err)
			return
		}

		fc, err := a.FilterFeatures(ctx, collectionID, b, r.URL.Query())
		if err != nil {
			writeError(w, logger, "could not filter features", err)
			return
		}

		writeCollection(w, r, logger, http.StatusOK, fc)
	}
}

func seed(ctx context.Context, w http.ResponseWriter, r *http.Request, a app.FeaturesApp) error {
	file, _, err := r.FormFile("fileupload")
	if err != nil {
		return errors.Join(errBadUpload, err)
	}
	defer file.Close()

	err = a.Seed(ctx, file)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusCreated)
	return nil
}

var errBadUpload = errors.New("missing fileupload")

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errors.Join(errInvalidID, err)
	}
	return id, nil
}

// writeCollection renders fc as GeoJSON unless the client asks for FlatGeobuf.
func writeCollection(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, fc features.FeatureCollection) {
	if acceptsFlatGeobuf(r) {
		var buf bytes.Buffer

		err := flatgeobuf.Write(&buf, fc)
		if err != nil {
			writeError(w, logger, "could not encode flatgeobuf", err)
			return
		}

		w.Header().Set("Content-Type", flatgeobuf.ContentType)
		w.WriteHeader(status)
		w.Write(buf.Bytes())
		return
	}

	w.Header().Set("Content-Type", GeoJSONContentType)
	w.WriteHeader(status)
	w.Write([]byte(fc.GeoJSON()))
}

func acceptsFlatGeobuf(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), flatgeobuf.ContentType)
}

func isMultipartFormData(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "multipart/form-data")
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, values.ErrMalformedJSON),
		errors.Is(err, values.ErrMissingField),
		errors.Is(err, features.ErrMalformedGeometry),
		errors.Is(err, features.ErrUnsupportedGeometryType),
		errors.Is(err, filters.ErrUnsupportedExpressionType),
		errors.Is(err, filters.ErrUnsupportedElementType),
		errors.Is(err, filters.ErrUnknownField),
		errors.Is(err, filters.ErrEmptyExpressionList),
		errors.Is(err, filters.ErrInvalidField),
		errors.Is(err, app.ErrCollectionMismatch),
		errors.Is(err, errInvalidID),
		errors.Is(err, errBadUpload):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		logger.Error(msg, "err", err.Error())
	} else {
		logger.Debug(msg, "err", err.Error())
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}
