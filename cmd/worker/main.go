// The worker consumes notification events and sends the corresponding email.
// It is a separate process so a slow SMTP relay never blocks a request.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/finestevents/backend/config"
	"github.com/finestevents/backend/internal/email"
	"github.com/finestevents/backend/internal/kafka"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("kafka brokers are required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.SMTP, log)

	log.Info().Str("topic", cfg.Kafka.NotificationsTopic).Msg("worker consuming notifications")
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.NotificationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error().Err(err).Msg("decode notification event, skipping")
			return nil
		}
		if err := sender.Send(ctx, event); err != nil {
			// Provider errors are logged, not retried; the next event still flows.
			log.Error().Err(err).Str("type", event.Type).Msg("send notification")
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("consumer stopped")
	}
	log.Info().Msg("worker stopped")
}
