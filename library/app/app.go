package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/config"
	"github.com/Astemirdum/bookaloo/library/internal/events"
	"github.com/Astemirdum/bookaloo/library/internal/handler"
	"github.com/Astemirdum/bookaloo/library/internal/repository"
	"github.com/Astemirdum/bookaloo/library/internal/server"
	"github.com/Astemirdum/bookaloo/library/internal/service"
	"github.com/Astemirdum/bookaloo/library/migrations"
	"github.com/Astemirdum/bookaloo/pkg/circuit_breaker"
	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/pkg/logger"
	"github.com/Astemirdum/bookaloo/pkg/postgres"
)

type publisher interface {
	service.Publisher
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when no brokers are configured.
func NewPublisher(cfg *config.Config, log *zap.Logger) (publisher, error) {
	if !cfg.Kafka.Enabled() {
		log.Info("kafka is not configured, loan events are not published")
		return events.Nop{}, nil
	}
	if err := kafka.CreateTopics(cfg.Kafka, cfg.Lending.EventsTopic); err != nil {
		log.Warn("kafka.CreateTopics", zap.Error(err))
	}
	producer, err := kafka.NewSyncProducer(cfg.Kafka)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewSyncProducer")
	}
	cb := circuit_breaker.New(10, 30*time.Second, 0.5, 3)
	return events.NewPublisher(producer, cfg.Lending.EventsTopic, cb, log), nil
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	pub, err := NewPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("publisher close", zap.Error(err))
		}
	}()

	svc := service.NewService(repo, log,
		service.WithLoanPeriod(cfg.Lending.LoanPeriod),
		service.WithMinDueAhead(cfg.Lending.MinDueAhead),
		service.WithPublisher(pub),
	)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
