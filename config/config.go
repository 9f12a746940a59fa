package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"photoadmin/internal/application/usecase"
	"photoadmin/internal/infrastructure/broker"
	"photoadmin/internal/infrastructure/filesystem"
	"photoadmin/internal/infrastructure/objectstore"
)

const defaultBodyLimit = "200M"

// Config represents the configs used by services on system.
type Config struct {
	Environment string                 `yaml:"environment"`
	Default     DefaultConfig          `yaml:"default"`
	Storage     objectstore.Config     `yaml:"storage"`
	Files       filesystem.Config      `yaml:"files"`
	Images      usecase.PipelineConfig `yaml:"images"`
	Broker      broker.Config          `yaml:"broker"`
	Auth        AuthConfig             `yaml:"auth"`
	Logger      logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
}

type AuthConfig struct {
	Token string `yaml:"token" env:"ADMIN_TOKEN"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := loadDotEnv(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	config.applyDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// loadDotEnv reads .env from the working directory when there is one.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return godotenv.Load()
}

func (c *Config) applyDefaults() {
	if c.Default.BodyLimit == "" {
		c.Default.BodyLimit = defaultBodyLimit
	}

	if c.Files.OrderFile == "" && c.Files.AlbumsDir != "" {
		c.Files.OrderFile = filepath.Join(c.Files.AlbumsDir, "order.json")
	}

	if len(c.Logger.Targets) == 0 {
		c.Logger.Targets = []string{"console"}
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address is required")
	}

	switch c.Storage.Driver {
	case objectstore.DriverMinio, objectstore.DriverS3:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q",
			objectstore.DriverMinio, objectstore.DriverS3, c.Storage.Driver)
	}

	if c.Storage.Bucket == "" {
		return errors.New("storage.bucket is required")
	}

	if c.Storage.Driver == objectstore.DriverMinio && c.Storage.Endpoint == "" {
		return errors.New("storage.endpoint is required for the minio driver")
	}

	if c.Files.PostsDir == "" || c.Files.AlbumsDir == "" {
		return errors.New("files.posts_dir and files.albums_dir are required")
	}

	switch c.Broker.Driver {
	case "":
	case broker.DriverRedis, broker.DriverAMQP:
		if c.Broker.URI == "" {
			return errors.New("BROKER_URI is required when a broker driver is set")
		}
	default:
		return fmt.Errorf("broker.driver must be empty, %q or %q, got %q",
			broker.DriverRedis, broker.DriverAMQP, c.Broker.Driver)
	}

	return nil
}
