package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/adapter/messaging/nats"
	"github.com/armazena/listing-service/internal/adapter/repository/cache"
	"github.com/armazena/listing-service/internal/adapter/repository/mongodb"
	"github.com/armazena/listing-service/internal/adapter/rest"
	"github.com/armazena/listing-service/internal/adapter/storage/s3"
	"github.com/armazena/listing-service/internal/config"
	"github.com/armazena/listing-service/internal/listing/usecase"
	"github.com/armazena/listing-service/internal/mailer"
	"github.com/armazena/listing-service/internal/platform/logger"
	"github.com/armazena/listing-service/internal/platform/metrics"
	"github.com/armazena/listing-service/internal/platform/tracer"
)

const serviceName = "listing-service"

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTLPEndpoint != "" {
		tp, err := tracer.InitTracer(ctx, serviceName, cfg.OTLPEndpoint)
		if err != nil {
			log.Warn("tracer init failed, continuing without tracing", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					log.Error("tracer shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	mongoCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	if err := mongoClient.Ping(mongoCtx, readpref.Primary()); err != nil {
		log.Fatal("failed to ping mongodb", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("mongodb disconnect failed", zap.Error(err))
		}
	}()
	log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))

	db := mongoClient.Database(cfg.MongoDatabase)
	listingRepo := mongodb.NewListingRepository(db, log.Named("mongo.listings"))
	favoriteRepo := mongodb.NewFavoriteRepository(db, log.Named("mongo.favorites"))
	contactRepo := mongodb.NewContactRepository(db, log.Named("mongo.contacts"))

	if err := favoriteRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to ensure favorite indexes", zap.Error(err))
	}

	// Redis and NATS are optional at startup: the usecases degrade to direct
	// repository reads and skip event publishing when they are absent.
	var catalogCache usecase.CatalogCache
	redisCache, err := cache.NewCatalogCache(cfg.RedisAddress)
	if err != nil {
		log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
	} else {
		defer redisCache.Close()
		catalogCache = redisCache
		log.Info("catalog cache ready", zap.String("addr", cfg.RedisAddress))
	}

	var events usecase.EventPublisher
	publisher, err := nats.NewPublisher(cfg.NATSURL)
	if err != nil {
		log.Warn("nats unavailable, event publishing disabled", zap.Error(err))
	} else {
		defer publisher.Close()
		events = publisher
	}

	imageStorage, err := s3.NewImageStorage(
		cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL,
		log.Named("storage"),
	)
	if err != nil {
		log.Fatal("failed to initialize image storage", zap.Error(err))
	}

	var contactMailer usecase.Mailer
	if cfg.SMTPEmail != "" {
		contactMailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	} else {
		log.Warn("SMTP_EMAIL not set, contact mail delivery disabled")
	}

	listingUC := usecase.NewListingUsecase(listingRepo, catalogCache, events, log.Named("usecase.listing"))
	photoUC := usecase.NewPhotoUsecase(imageStorage, listingRepo, catalogCache, log.Named("usecase.photo"))
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, listingRepo, log.Named("usecase.favorite"))
	contactUC := usecase.NewContactUsecase(listingRepo, contactRepo, contactMailer, events, log.Named("usecase.contact"))

	m := metrics.NewManager("listing_service")
	go func() {
		if err := metrics.StartServer(cfg.MetricsPort, log.Named("metrics"), m.Registry); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	handler := rest.NewHandler(listingUC, photoUC, favoriteUC, contactUC, m, log.Named("rest"))
	server := rest.NewServer(cfg.HTTPPort, handler, m, cfg.JWTSecret, log.Named("http"))

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error("http server failed", zap.Error(err))
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("service stopped")
}
