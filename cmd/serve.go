package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BeerBase/configs"
	"droscher.com/BeerBase/pkg/catalog"
	"droscher.com/BeerBase/pkg/repository"
	"droscher.com/BeerBase/pkg/server"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".BeerBase.toml" help:"Path to config file" short:"c"`
	Reinit     bool   `help:"Drop the beers table and reload it from the seed file before serving"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logger := newLogger(ctx, true)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = repo.EnsureSchema(signalCtx); err != nil {
		logger.Error("error creating schema", zap.Error(err))

		return err
	}

	beerCatalog := catalog.NewCatalog(repo, logger)

	if s.Reinit || conf.Seed.Reinitialize {
		// a failed load still leaves a usable, possibly empty, catalog
		result, loadErr := beerCatalog.Reinitialize(signalCtx, conf.Seed.File)
		if loadErr != nil {
			logger.Error("seed load failed, serving without it",
				zap.String("file", conf.Seed.File), zap.Int("failed", result.Failed), zap.Error(loadErr))
		}
	}

	if ctx == nil || !ctx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(server.NewBeerServer(beerCatalog, logger), logger)
	handler := server.NewHandler(router, server.NewHealthChecker(repo, logger), logger)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           handler,
	}

	go func() {
		<-signalCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := svr.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("error shutting down server", zap.Error(shutdownErr))
		}
	}()

	logger.Info("serving", zap.String("address", svr.Addr), zap.String("database", repo.Location()))

	err = svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}
