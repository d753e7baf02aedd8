package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"emogo/internal/infrastructure/blobstore"
	"emogo/internal/infrastructure/broker"
	"emogo/internal/infrastructure/database"
	"emogo/internal/infrastructure/minio"
	"emogo/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	DBConfig        database.Config        `yaml:"db_config"`
	Media           MediaConfig            `yaml:"media"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
	RateLimit int    `yaml:"rate_limit_per_second"`
}

// MediaConfig selects and configures the blob backend: "fs" stores uploads
// in a local directory, "s3" in an S3-compatible object store.
type MediaConfig struct {
	Backend  string             `yaml:"backend"`
	FS       blobstore.Config   `yaml:"fs"`
	S3Client minio.ClientConfig `yaml:"s3_client"`
	S3Store  minio.StoreConfig  `yaml:"s3_store"`
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
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Media.S3Client.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.Media.S3Client.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch c.Media.Backend {
	case "", "fs", "s3":
	default:
		return errors.New("media.backend must be one of: fs, s3")
	}

	if c.HTTPServer.Address == "" {
		return errors.New("http_server.address must be set")
	}

	return nil
}
