package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerBase/configs"
	"droscher.com/BeerBase/pkg/catalog"
	"droscher.com/BeerBase/pkg/repository"
)

type ResetCmd struct {
	ConfigFile string `default:".BeerBase.toml" help:"Path to config file" short:"c"`
	SeedFile   string `help:"Seed file to load, overrides the configured one" short:"s" type:"path"`
}

func (r *ResetCmd) Run(ctx *Context) error {
	logger := newLogger(ctx, false)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(r.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	if r.SeedFile != "" {
		conf.Seed.File = r.SeedFile
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	result, err := catalog.NewCatalog(repo, logger).Reinitialize(context.Background(), conf.Seed.File)
	if err != nil {
		return err
	}

	logger.Info("catalog reinitialized", zap.Int("beers", result.Loaded))

	return nil
}
