package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/pkg/logger"
	"github.com/Astemirdum/bookaloo/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Lending holds the loan rules and where loan events go.
type Lending struct {
	LoanPeriod  time.Duration `yaml:"loanPeriod" envconfig:"LOAN_PERIOD" default:"336h"`
	MinDueAhead time.Duration `yaml:"minDueAhead" envconfig:"MIN_DUE_AHEAD" default:"24h"`
	EventsTopic string        `yaml:"eventsTopic" envconfig:"LOAN_EVENTS_TOPIC" default:"loan-events"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Kafka    kafka.Config
	Lending  Lending    `yaml:"lending"`
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options set values the environment
// does not override unless the matching variable is present.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
