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

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"photoadmin"
	"photoadmin/config"
	"photoadmin/internal/application/usecase"
	"photoadmin/internal/infrastructure/filesystem"
	"photoadmin/internal/infrastructure/imaging"
	"photoadmin/internal/presentation/handler"
	"photoadmin/internal/presentation/middleware"
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

	logger.Info("running photoadmin", "version", photoadmin.StringVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bucket, err := newBucket(ctx, &cfg.Storage)
	if err != nil {
		ExitOnError(err)
	}

	if err := bucket.Authorize(ctx, false); err != nil {
		logger.Warn("storage authorization failed, retrying on first use", "err", err)
	}

	publisher, err := newPublisher(cfg.Broker)
	if err != nil {
		ExitOnError(err)
	}
	defer publisher.Close()

	albumFiles, err := filesystem.NewAlbumFiles(cfg.Files)
	if err != nil {
		ExitOnError(err)
	}
	orderFile := filesystem.NewOrderFile(cfg.Files.OrderFile)

	pipeline := usecase.NewPipeline(bucket, imaging.New(), cfg.Images)

	handlers := handler.Handlers{
		Albums: handler.NewAlbumHandler(
			usecase.NewLister(albumFiles, albumFiles, orderFile),
			usecase.NewCreator(albumFiles, albumFiles, pipeline, publisher),
			usecase.NewUpdater(albumFiles, albumFiles, publisher),
			usecase.NewDeleter(albumFiles, albumFiles, bucket, publisher),
		),
		Images: handler.NewImageHandler(
			usecase.NewImageAdder(albumFiles, albumFiles, pipeline, publisher),
			usecase.NewImageDeleter(albumFiles, albumFiles, bucket, publisher),
			usecase.NewImageReorderer(albumFiles, albumFiles, publisher),
		),
		Order: handler.NewOrderHandler(usecase.NewOrderer(orderFile, publisher)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodOptions},
		ExposeHeaders: []string{"X-Reason"},
		MaxAge:        86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.Default.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	handler.Register(e, handlers, middleware.Token(cfg.Auth.Token))

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}
