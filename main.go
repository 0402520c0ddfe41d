package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/cache"
	"nexus-tube/infrastructure/clients/genai"
	"nexus-tube/infrastructure/configuration"
	"nexus-tube/infrastructure/filesave"
	"nexus-tube/infrastructure/logger"
	"nexus-tube/infrastructure/persistence"
	"nexus-tube/infrastructure/pubsub"
	"nexus-tube/infrastructure/realtime"
	"nexus-tube/infrastructure/servicebus"
	httpHandler "nexus-tube/interfaces/http"
	"nexus-tube/server"
	"nexus-tube/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	app := configuration.C.App
	if app.SecretKey == "" {
		app.SecretKey = uuid.NewString()
		logger.GetLogger().Warn("Using a random session secret; tokens will not survive a restart")
	}

	store := usecase.NewStore(loadSeed(ctx)).WithFileSaver(newFileSaver())

	redisClient, err := cache.NewCache(ctx, configuration.C.RedisClient)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing with in-memory toasts")
		redisClient = nil
	}
	toasts := cache.NewToastCache(redisClient)

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("PubSub not available - notifications are delivered in process")
		pubSubClient = nil
	}
	notificationFeed := pubsub.NewNotificationFeed(pubSubClient, configuration.C.Pubsub.Topic, configuration.C.Pubsub.Subscription, store)

	azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - moderation decisions are only logged")
		azServiceBusClient = nil
	}
	outbox := servicebus.NewModerationOutbox(azServiceBusClient, configuration.C.ServiceBus.Queue)

	hub := realtime.NewStoreHub(app.AllowOrigins)
	store.Subscribe(hub.Broadcast)
	store.Subscribe(toasts.Record)
	store.Subscribe(outbox.Record)

	gate, err := usecase.NewDirectorGate(app.DirectorPassword)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Cannot set up the director gate")
	}

	handlers := server.Handlers{
		Session:      httpHandler.NewSessionHandler(store, gate, app.SecretKey),
		Catalog:      httpHandler.NewCatalogHandler(store),
		Feed:         httpHandler.NewFeedHandler(store),
		Engagement:   httpHandler.NewEngagementHandler(store, store),
		Library:      httpHandler.NewLibraryHandler(store, store),
		Moderation:   httpHandler.NewModerationHandler(store, store),
		Message:      httpHandler.NewMessageHandler(store),
		Notification: httpHandler.NewNotificationHandler(store, notificationFeed),
		Assist:       httpHandler.NewAssistHandler(usecase.NewAssistUsecase(newContentAssist(ctx))),
		Toast:        httpHandler.NewToastHandler(toasts),
	}
	router := server.InitiateRouter(handlers, store, hub, app.SecretKey, app.AllowOrigins)

	g.Go(func() error {
		return notificationFeed.Run(ctx)
	})
	g.Go(func() error {
		return outbox.Run(ctx)
	})

	logger.GetLogger().WithFields(map[string]interface{}{"port": app.Port, "tls": app.TLSEnabled}).Info("Starting application")
	httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Port),
		Handler: router,
	}
	g.Go(func() error {
		var err error
		if app.TLSEnabled && app.TLSCertFile != "" && app.TLSKeyFile != "" {
			logger.GetLogger().WithFields(map[string]interface{}{"cert": app.TLSCertFile, "key": app.TLSKeyFile}).Info("Serving HTTPS")
			err = httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile)
		} else {
			if app.TLSEnabled {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
			}
			err = httpServer.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if pubSubClient != nil {
		_ = pubSubClient.Close()
	}
	if azServiceBusClient != nil {
		_ = azServiceBusClient.Close(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// loadSeed reads the initial catalog from the configured source. Any failure
// falls back to the built-in catalog so the app always starts.
func loadSeed(ctx context.Context) *model.Seed {
	static := persistence.NewStaticSeed(time.Now)
	source := configuration.C.Seed.Source

	seeder, closeFn, err := seedSource(ctx, source)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("source", source).Warn("Seed source not available - using the built-in catalog")
		seeder, closeFn = static, func() {}
	}
	defer closeFn()

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	seed, err := seeder.Load(loadCtx)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("source", source).Warn("Seed load failed - using the built-in catalog")
		seed, _ = static.Load(ctx)
	} else if len(seed.Users) == 0 && len(seed.Videos) == 0 {
		logger.GetLogger().WithField("source", source).Warn("Seed source is empty - using the built-in catalog")
		seed, _ = static.Load(ctx)
	}
	logger.GetLogger().
		WithField("source", source).
		WithField("users", len(seed.Users)).
		WithField("videos", len(seed.Videos)).
		Info("Catalog loaded")
	return seed
}

func seedSource(ctx context.Context, source string) (repository.ISeed, func(), error) {
	db := configuration.C.Database
	switch source {
	case "psql":
		conn, err := persistence.NewPostgreSQLDB(db.Psql)
		if err != nil {
			return nil, nil, err
		}
		ensureSchema(conn, persistence.DialectPostgres)
		return persistence.NewSQLSeed(conn, persistence.DialectPostgres), func() { _ = conn.Close() }, nil
	case "mssql":
		conn, err := persistence.NewMSSQLDB(db.Mssql)
		if err != nil {
			return nil, nil, err
		}
		ensureSchema(conn, persistence.DialectMSSQL)
		return persistence.NewSQLSeed(conn, persistence.DialectMSSQL), func() { _ = conn.Close() }, nil
	case "mongo":
		client, err := persistence.NewMongoDb(db.Mongo)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		return persistence.NewMongoSeed(client, db.Mongo.Name), func() { _ = client.Disconnect(context.Background()) }, nil
	case "", "static":
		return persistence.NewStaticSeed(time.Now), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown seed source %q", source)
}

func ensureSchema(db *sql.DB, dialect persistence.Dialect) {
	if err := persistence.EnsureSeedSchema(db, dialect); err != nil {
		logger.GetLogger().WithField("error", err).Error("failed ensuring seed schema")
	}
}

func newFileSaver() repository.IFileSaver {
	download := configuration.C.Download
	if download.Minio.Endpoint != "" {
		saver, err := filesave.NewMinioSaver(download.Minio)
		if err == nil {
			logger.GetLogger().WithField("bucket", download.Minio.Bucket).Info("Downloads are stored in object storage")
			return saver
		}
		logger.GetLogger().WithField("error", err).Warn("MinIO not available - saving downloads locally")
	}
	return filesave.NewLocalSaver(download.Dir)
}

// newContentAssist returns nil without an API key; the assist usecase then
// answers with its fallbacks.
func newContentAssist(ctx context.Context) repository.IContentAssist {
	client, err := genai.NewClient(ctx, configuration.C.Gemini, genai.DefaultEndpoint)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Content assist not available - using fallbacks")
		return nil
	}
	return client
}
