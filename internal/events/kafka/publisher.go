package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// EventTransactionRecorded is the event type carried by every message on the topic.
const EventTransactionRecorded = "transaction_recorded"

// Direction values carried on each event.
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)

// TransactionRecordedEvent is the message body published for each recorded transaction.
type TransactionRecordedEvent struct {
	EventType     string          `json:"event_type"`
	TransactionID uint64          `json:"transaction_id"`
	ChildName     string          `json:"child_name"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction"`
	Purpose       string          `json:"purpose"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// Publisher writes transaction events to a Kafka topic. Writes are asynchronous,
// failures are logged from the completion callback.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

var _ portssvc.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{logger: logger}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		Async:        true,
		RequiredAcks: kafka.RequireOne,
		Completion:   p.completed,
	}
	return p
}

// PublishTransaction queues tx on the writer, keyed by child name so one child's
// events stay in order on a single partition.
func (p *Publisher) PublishTransaction(ctx context.Context, tx domain.Transaction) error {
	msg, err := newMessage(tx)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) completed(messages []kafka.Message, err error) {
	if err == nil {
		p.logger.Debug("Published transaction events", slog.Int("count", len(messages)))
		return
	}
	for _, msg := range messages {
		p.logger.Error("Failed to publish transaction event",
			slog.String("error", err.Error()),
			slog.String("child_name", string(msg.Key)))
	}
}

func newEvent(tx domain.Transaction) TransactionRecordedEvent {
	direction := DirectionDebit
	if tx.IsCredit() {
		direction = DirectionCredit
	}
	return TransactionRecordedEvent{
		EventType:     EventTransactionRecorded,
		TransactionID: tx.ID,
		ChildName:     tx.ChildName,
		Amount:        tx.Amount.Decimal(),
		Direction:     direction,
		Purpose:       tx.Purpose,
		RecordedAt:    tx.Timestamp,
	}
}

func newMessage(tx domain.Transaction) (kafka.Message, error) {
	data, err := json.Marshal(newEvent(tx))
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(tx.ChildName),
		Value: data,
		Time:  tx.Timestamp,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTransactionRecorded)},
		},
	}, nil
}
