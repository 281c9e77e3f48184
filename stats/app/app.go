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
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/pkg/logger"
	"github.com/Astemirdum/bookaloo/pkg/postgres"
	"github.com/Astemirdum/bookaloo/stats/config"
	"github.com/Astemirdum/bookaloo/stats/internal/handler"
	"github.com/Astemirdum/bookaloo/stats/internal/repository"
	"github.com/Astemirdum/bookaloo/stats/internal/server"
	"github.com/Astemirdum/bookaloo/stats/internal/service"
	"github.com/Astemirdum/bookaloo/stats/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	svc := service.NewService(repo, log)

	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is required")
	}
	if err = kafka.CreateTopics(cfg.Kafka, cfg.EventsTopic); err != nil {
		log.Warn("kafka.CreateTopics", zap.Error(err))
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}
	defer consumer.Close()

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return kafka.Consume(gctx, consumer, handler.NewConsumer(svc.Stats, log), cfg.EventsTopic)
	})
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
