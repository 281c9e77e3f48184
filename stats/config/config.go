package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/pkg/logger"
	"github.com/Astemirdum/bookaloo/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STATS_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"STATS_HTTP_PORT" default:"8070"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	// DatabaseName replaces DB_NAME so both services can share one Postgres instance.
	DatabaseName string `yaml:"dbname" envconfig:"STATS_DB_NAME" default:"stats"`
	Kafka        kafka.Config
	EventsTopic  string     `yaml:"eventsTopic" envconfig:"LOAN_EVENTS_TOPIC" default:"loan-events"`
	Log          logger.Log `yaml:"log"`
}

type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		config.Database.NameDB = config.DatabaseName
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
