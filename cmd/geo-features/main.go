package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/diwise/geo-features/internal/app/api"
	app "github.com/diwise/geo-features/internal/app/geofeatures"
	"github.com/diwise/geo-features/internal/pkg/storage"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "geo-features"

var cli struct {
	Listen string `help:"Address the HTTP server listens on." default:":8080"`
	Fields string `help:"YAML file with the fields a filter may reference." default:"/opt/diwise/config/fields.yaml" type:"path"`
	Seed   string `help:"CSV file with collections and features to load at startup." default:"/opt/diwise/config/features.csv" type:"path"`
}

func main() {
	kong.Parse(&cli,
		kong.Name(serviceName),
		kong.Description("GeoJSON feature collections stored in PostGIS"),
		kong.UsageOnError(),
	)

	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("could not configure storage", "err", err.Error())
		os.Exit(1)
	}

	config := messaging.LoadConfiguration(ctx, serviceName, log)
	messenger, err := messaging.Initialize(ctx, config)
	if err != nil {
		log.Error("failed to init messenger", "err", err.Error())
		os.Exit(1)
	}
	messenger.Start()

	a := app.New(s, s, messenger)

	messenger.RegisterTopicMessageHandler("message.accepted", app.NewMeasurementsHandler(a))

	err = withFile(ctx, cli.Fields, a.LoadConfig)
	if err != nil {
		log.Error("file with filter fields found but could not be loaded", "err", err.Error())
		os.Exit(1)
	}

	err = withFile(ctx, cli.Seed, a.Seed)
	if err != nil {
		log.Error("file with features found but could not seed data", "err", err.Error())
		os.Exit(1)
	}

	r := api.Register(ctx, a)

	webServer := &http.Server{Addr: cli.Listen, Handler: r}

	go func() {
		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	webServer.Shutdown(ctx)
	messenger.Close()
	s.Close()
}

// withFile hands the file at fp to fn. A missing file is not an error.
func withFile(ctx context.Context, fp string, fn func(context.Context, io.Reader) error) error {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no file found", "path", fp)
			return nil
		}
		return err
	}
	defer f.Close()

	return fn(ctx, f)
}
