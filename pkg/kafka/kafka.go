package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const (
	LoanEventsTopic    = "loan-events"
	StatsConsumerGroup = "stats"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventLoanCreated  EventType = "LOAN_CREATED"
	EventLoanReturned EventType = "LOAN_RETURNED"
)

// LoanEvent is published after a lend or return commits.
type LoanEvent struct {
	EventID            string     `json:"event_id"`
	EventType          EventType  `json:"event_type"`
	LoanID             int64      `json:"loan_id"`
	BookCopyIdentifier string     `json:"book_copy_identifier"`
	VisitorIdentifier  string     `json:"visitor_identifier"`
	OccurredAt         time.Time  `json:"occurred_at"`
	DueDate            time.Time  `json:"due_date"`
	ReturnDate         *time.Time `json:"return_date,omitempty"`
	Condition          string     `json:"condition,omitempty"`
}

func newConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_8_0_0
	return cfg
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := newConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := newConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// CreateTopics makes sure the topics exist; an already existing topic is not an error.
func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, newConfig())
	if err != nil {
		return errors.Wrap(err, "sarama.NewClusterAdmin")
	}
	defer admin.Close()

	for _, topic := range topics {
		err = admin.CreateTopic(topic, &sarama.TopicDetail{NumPartitions: 3, ReplicationFactor: 1}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			var topicErr *sarama.TopicError
			if errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists {
				continue
			}
			return errors.Wrapf(err, "create topic %s", topic)
		}
	}
	return nil
}

// Consume runs the consumer group loop until ctx is cancelled.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
