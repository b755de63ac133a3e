package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/shared/config"
)

// ProcessedMessage is the wire payload published after gateway processing.
type ProcessedMessage struct {
	PaymentID     string          `json:"payment_id"`
	UserID        string          `json:"user_id"`
	GameID        string          `json:"game_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	ProcessedAt   time.Time       `json:"processed_at"`
}

// Publisher sends payment notifications to Kafka.
type Publisher interface {
	PublishProcessed(p *payment.Payment) error
	Close() error
}

// KafkaPublisher publishes with a synchronous sarama producer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

// NewKafkaPublisher connects a sync producer to the configured brokers.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) (*KafkaPublisher, error) {
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3
	sc.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &KafkaPublisher{
		producer: producer,
		topic:    cfg.Topic,
		logger:   logger,
	}, nil
}

// PublishProcessed sends the processed notification, keyed by user so a
// user's payments stay ordered within a partition.
func (p *KafkaPublisher) PublishProcessed(pay *payment.Payment) error {
	processedAt := time.Now().UTC()
	if pay.ProcessedAt() != nil {
		processedAt = *pay.ProcessedAt()
	}
	msg := ProcessedMessage{
		PaymentID:     pay.ID().String(),
		UserID:        pay.UserID().String(),
		GameID:        pay.GameID().String(),
		Amount:        pay.Amount(),
		Status:        string(pay.Status()),
		TransactionID: pay.TransactionID(),
		ProcessedAt:   processedAt,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal processed message: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(msg.UserID),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("send processed message: %w", err)
	}
	p.logger.Debug("published processed message",
		zap.String("payment_id", msg.PaymentID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
