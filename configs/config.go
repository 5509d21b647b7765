package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
	ConnectAttempts    uint   `default:"5"`
}

// Location identifies the backing store; two configs with the same location share a connection.
func (d DB) Location() string {
	if d.Driver == DriverPostgres {
		return fmt.Sprintf("postgres://%s@%s:%d/%s", d.User, d.Host, d.Port, d.Database)
	}

	return d.Path
}

type Server struct {
	Port int `default:"8080"`
}

type Seed struct {
	File         string `default:"data/beers.csv"`
	Reinitialize bool
}

type Config struct {
	DB     DB
	Server Server
	Seed   Seed
}

const envPrefix = "BEERBASE" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.DB.Path) == "" {
			return fmt.Errorf("%w: DB.Path is required for the %s driver", ErrConfiguration, DriverSQLite)
		}
	case DriverPostgres:
		var missing []string

		if c.DB.Host == "" {
			missing = append(missing, "DB.Host")
		}

		if c.DB.Password == "" {
			missing = append(missing, "DB.Password")
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s required for the %s driver", ErrConfiguration, strings.Join(missing, ", "), DriverPostgres)
		}
	default:
		return fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, c.DB.Driver)
	}

	return nil
}
