package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"archery/config"
	"archery/logger"
	"archery/metrics"
	"archery/repository"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DecisionEvent is published once per approved or rejected request.
type DecisionEvent struct {
	RequestId   int                     `json:"request_id"`
	Kind        repository.RequestKind  `json:"kind"`
	RequesterId int                     `json:"requester_id"`
	TargetId    int                     `json:"target_id"`
	ReviewerId  int                     `json:"reviewer_id"`
	Status      repository.ReviewStatus `json:"status"`
	Comment     string                  `json:"comment"`
	DecidedAt   time.Time               `json:"decided_at"`
}

type DecisionPublisher interface {
	Publish(ctx context.Context, event DecisionEvent) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewDecisionPublisher falls back to a no-op publisher when no broker is configured.
func NewDecisionPublisher() DecisionPublisher {
	log := logger.Named("kafka")
	if config.Env().KafkaBroker == "" {
		return &NoopPublisher{log: log}
	}
	writer, err := config.GetWriter(config.ReviewDecisionTopic)
	if err != nil {
		log.Warnw("kafka unavailable, decisions will not be published", "error", err)
		return &NoopPublisher{log: log}
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event DecisionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RequestId)),
		Value: value,
		Time:  event.DecidedAt,
	})
	if err != nil {
		metrics.NotificationErrorCounter.WithLabelValues("kafka").Inc()
	}
	return err
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct {
	log *zap.SugaredLogger
}

func (p *NoopPublisher) Publish(_ context.Context, event DecisionEvent) error {
	p.log.Debugw("decision", "request_id", event.RequestId, "kind", event.Kind, "status", event.Status)
	return nil
}
