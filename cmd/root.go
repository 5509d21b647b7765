package cmd

import (
	"go.uber.org/zap"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                               help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Create the beers table if it is missing"`
	Reset   ResetCmd   `cmd:"" help:"Drop the beers table and reload it from the seed file"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

func newLogger(ctx *Context, production bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if production {
		logConfig = zap.NewProductionConfig()
	}

	if ctx != nil && ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}
