package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/dtroode/marketplace-server/internal/api/http"
	"github.com/dtroode/marketplace-server/internal/api/http/handler"
	"github.com/dtroode/marketplace-server/internal/api/http/httpctx"
	rediscache "github.com/dtroode/marketplace-server/internal/cache/redis"
	"github.com/dtroode/marketplace-server/internal/config"
	"github.com/dtroode/marketplace-server/internal/link"
	"github.com/dtroode/marketplace-server/internal/logger"
	"github.com/dtroode/marketplace-server/internal/mail"
	"github.com/dtroode/marketplace-server/internal/model"
	mongorepo "github.com/dtroode/marketplace-server/internal/repository/mongo"
	"github.com/dtroode/marketplace-server/internal/repository/postgres"
	"github.com/dtroode/marketplace-server/internal/server"
	"github.com/dtroode/marketplace-server/internal/service"
	storage "github.com/dtroode/marketplace-server/internal/storage/minio"
	"github.com/dtroode/marketplace-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	mongoConn, err := mongorepo.NewConnection(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("failed to initialize document store", "error", err)
	}
	defer mongoConn.Close(context.Background())

	cache := rediscache.NewClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}))
	if err := cache.Ping(ctx); err != nil {
		logger.Fatal("failed to reach cache", "error", err)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	mailer, err := mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender)
	if err != nil {
		logger.Fatal("failed to create mailer", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	shopRepo := mongorepo.NewShopRepository(mongoConn)
	productRepo := mongorepo.NewProductRepository(mongoConn)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)
	linkService := link.NewService(cache, logger)
	ctxManager := httpctx.NewManager()

	authService := service.NewAuth(userRepo, tokenManager, linkService, mailer, service.AuthConfig{
		BaseURL:       cfg.App.BaseURL,
		ActivationTTL: cfg.Link.ActivationTTL,
		ResetTTL:      cfg.Link.ResetTTL,
	}, logger)
	shopService := service.NewShop(shopRepo)
	productService := service.NewProduct(productRepo, shopRepo, storageClient)

	httpServer := httpapi.NewServer(fmt.Sprintf(":%s", cfg.HTTP.Port), httpapi.Handlers{
		Auth:    handler.NewAuth(authService, ctxManager),
		Shop:    handler.NewShop(shopService, ctxManager),
		Product: handler.NewProduct(productService, ctxManager),
		Health:  handler.NewHealth(cfg.App.Name, cfg.App.Mode, cfg.App.Debug),
	}, tokenManager, ctxManager, logger)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
