package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"emogo"
	"emogo/config"
	"emogo/internal/application/usecase"
	repoBlob "emogo/internal/domain/repository/blob"
	repoBroker "emogo/internal/domain/repository/broker"
	"emogo/internal/infrastructure/blobstore"
	"emogo/internal/infrastructure/broker"
	"emogo/internal/infrastructure/database"
	"emogo/internal/infrastructure/minio"
	"emogo/internal/presentation/handler"
	"emogo/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running emogo", "version", emogo.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("failed to disconnect from database", "err", err)
		}
	}()

	blobs, err := buildBlobStore(&cfg.Media)
	if err != nil {
		ExitOnError(err)
	}

	var publisher repoBroker.Publisher
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	writer := database.NewRecordWriter(db)
	retriever := database.NewRecordRetriever(db)
	lister := database.NewRecordLister(db)
	counter := database.NewRecordCounter(db)

	ingestor := usecase.NewIngestor(writer, blobs, publisher)
	fetcher := usecase.NewFetcher(retriever, lister)
	downloader := usecase.NewDownloader(blobs)
	exporter := usecase.NewExporter(lister, counter)
	healthChecker := usecase.NewHealthChecker(counter)

	indexHandler := handler.NewIndexHandler()
	vlogHandler := handler.NewVlogHandler(ingestor, fetcher)
	sentimentHandler := handler.NewSentimentHandler(ingestor, fetcher)
	gpsHandler := handler.NewGPSHandler(ingestor, fetcher)
	mediaHandler := handler.NewMediaHandler(downloader)
	exportHandler := handler.NewExportHandler(exporter)
	healthHandler := handler.NewHealthHandler(healthChecker)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTPServer.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(
		echoMiddleware.NewRateLimiterMemoryStore(rateLimit(cfg.HTTPServer.RateLimit))))

	e.GET("/", indexHandler.Handle)
	e.GET("/health", healthHandler.Handle)

	e.POST("/api/vlogs", vlogHandler.HandleCreate)
	e.GET("/api/vlogs", vlogHandler.HandleList)
	e.POST("/api/vlogs/upload", vlogHandler.HandleUpload)
	e.GET("/api/vlogs/download/:filename", mediaHandler.HandleDownload)
	e.GET("/api/vlogs/:id", vlogHandler.HandleGet)
	e.GET("/uploads/videos/:filename", mediaHandler.HandleView)

	e.POST("/api/sentiments", sentimentHandler.HandleCreate)
	e.GET("/api/sentiments", sentimentHandler.HandleList)
	e.GET("/api/sentiments/:id", sentimentHandler.HandleGet)

	e.POST("/api/gps", gpsHandler.HandleCreate)
	e.GET("/api/gps", gpsHandler.HandleList)
	e.GET("/api/gps/:id", gpsHandler.HandleGet)

	e.GET("/export", exportHandler.HandlePage)
	e.GET("/api/export/all", exportHandler.HandleBundle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}

func buildBlobStore(cfg *config.MediaConfig) (repoBlob.Store, error) {
	if cfg.Backend == "s3" {
		client, err := minio.New(&cfg.S3Client)
		if err != nil {
			return nil, err
		}

		return minio.NewStore(client.MinioClient, &cfg.S3Store), nil
	}

	return blobstore.NewFS(cfg.FS)
}

func rateLimit(perSecond int) rate.Limit {
	if perSecond <= 0 {
		perSecond = 20
	}

	return rate.Limit(perSecond)
}
