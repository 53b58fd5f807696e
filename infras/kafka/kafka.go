package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"roombook/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const writeTimeout = 5 * time.Second

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// DecodeKafkaMessage unmarshals the message value into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (string, T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal Kafka message value from JSON")

		return "", value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return string(msg.Key), value, nil
}

type Client interface {
	Enabled() bool
	SendMessages(ctx context.Context, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

type noopClient struct{}

// New builds a publisher for the configured topic. When Kafka is disabled every send is dropped.
func New(config *config.Config) Client {
	if !config.External.Kafka.Enable {
		log.Info().Msg("Kafka publisher disabled")

		return noopClient{}
	}

	transport := &kafkaGo.Transport{}

	if config.External.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.External.Kafka.SASL.Username,
			Password: config.External.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.External.Kafka.Brokers).Str("topic", config.External.Kafka.Topic).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(config.External.Kafka.Brokers...),
			Topic:                  config.External.Kafka.Topic,
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
			Async:                  true,
			Completion: func(messages []kafkaGo.Message, err error) {
				if err != nil {
					log.Error().Err(err).Int("count", len(messages)).Msg("Failed to deliver message to Kafka.")
				}
			},
		},
	}
}

func (k *kafkaClientImpl) Enabled() bool {
	return true
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, messages ...Message) error {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.writer.Topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", k.writer.Topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	return k.writer.Close() //nolint:wrapcheck
}

func (noopClient) Enabled() bool { return false }

func (noopClient) SendMessages(context.Context, ...Message) error { return nil }

func (noopClient) Close() error { return nil }
