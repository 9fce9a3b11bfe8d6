package geofeatures

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/senml"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("geo-features")

// NewMeasurementsHandler moves features that are tagged with a device id to
// the position reported by that device.
func NewMeasurementsHandler(app FeaturesApp) messaging.TopicMessageHandler {
	return func(ctx context.Context, d messaging.IncomingTopicMessage, logger *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, d.TopicName())
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		msg := struct {
			Pack      senml.Pack `json:"pack"`
			Timestamp time.Time  `json:"timestamp"`
		}{}

		err = json.Unmarshal(d.Body(), &msg)
		if err != nil {
			log.Error("could not unmarshal message", "err", err.Error())
			return
		}

		if msg.Pack.Validate() != nil {
			log.Error("message contains an invalid package")
			return
		}

		deviceID, ok := extractDeviceID(msg.Pack)
		if !ok {
			log.Debug("no deviceID found in package")
			return
		}

		position, ok := extractPosition(msg.Pack)
		if !ok {
			log.Debug("no position found in package", "device_id", deviceID)
			return
		}

		moved, err := app.MoveDeviceFeatures(ctx, deviceID, position)
		if err != nil {
			log.Error("could not move device features", "device_id", deviceID, "err", err.Error())
			return
		}

		if moved > 0 {
			log.Debug("moved device features", "device_id", deviceID, "count", moved)
		}
	}
}

func extractDeviceID(pack senml.Pack) (string, bool) {
	r, ok := pack.GetRecord(senml.FindByName("0"))
	if !ok {
		return "", false
	}

	deviceID := strings.Split(r.Name, "/")[0]
	return deviceID, deviceID != ""
}

// extractPosition reads the lat and lon records. 0,0 is what devices
// without a fix report and is treated as no position.
func extractPosition(pack senml.Pack) (features.Point, bool) {
	var lat, lon *float64

	for _, r := range pack {
		switch r.Unit {
		case "lat":
			lat = r.Value
		case "lon":
			lon = r.Value
		}
	}

	if lat == nil || lon == nil || (*lat == 0 && *lon == 0) {
		return features.Point{}, false
	}

	return features.NewPoint(*lon, *lat), true
}
