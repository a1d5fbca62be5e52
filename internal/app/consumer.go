package app

import (
	"context"

	"go-sportstore/internal/cart"
	"go-sportstore/internal/config"
	"go-sportstore/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer clears carts on CLEAR_CART events until ctx is cancelled.
// Carts live in Redis here whatever STORE_BACKEND says, since an in-memory
// store would not be shared with the API process.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger.Info("starting cart consumer",
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	// 1. Connect to Redis and Kafka
	rdb, err := ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.ConnectRetries, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := WaitForKafka(ctx, cfg.KafkaBroker, cfg.ConnectRetries, logger); err != nil {
		return err
	}

	// Clearing only touches the session store, so no product lookup is wired.
	cartService := cart.NewService(cart.NewRedisStore(rdb, cfg.SessionTTL, logger), nil, logger)

	// 2. Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
	defer reader.Close()

	// 3. Consume until shutdown
	consumer.ConsumeMessages(ctx, reader, cartService, logger)

	logger.Info("cart consumer stopped")
	return nil
}
