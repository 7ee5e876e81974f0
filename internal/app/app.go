package app

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
	"github.com/HamzaQasim7/inshacollections/internal/checkout"
	"github.com/HamzaQasim7/inshacollections/internal/messaging/kafka/producer"
	"github.com/HamzaQasim7/inshacollections/internal/shared/persist"
)

const ordersTopic = "storefront.orders"

// BuildApp wires infrastructure and registers every module on the router.
// Redis and Kafka are both optional: without REDIS_ADDR the cart and
// wishlist persist to local files, without KAFKA_BROKER no events are
// published.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	store, err := buildStore(logger)
	if err != nil {
		return err
	}

	var publisher producer.EventPublisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer, err := connectKafkaWithRetry(broker, ordersTopic, 5, logger)
		if err != nil {
			return err
		}
		publisher = producer.NewPublisher(writer, logger)
	}

	registerModules(router, store, publisher, logger, loadMoreDelay(), checkoutDelay())
	return nil
}

func buildStore(logger *zap.Logger) (persist.Store, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := connectRedisWithRetry(addr, 5, logger)
		if err != nil {
			return nil, err
		}
		return persist.NewRedisStore(client), nil
	}

	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	logger.Info("using file-backed persistence", zap.String("dir", dir))
	return persist.NewFileStore(dir)
}

func loadMoreDelay() time.Duration {
	return durationFromEnv("LOAD_MORE_DELAY_MS", catalog.DefaultLoadMoreDelay)
}

func checkoutDelay() time.Duration {
	return durationFromEnv("CHECKOUT_DELAY_MS", checkout.DefaultProcessingDelay)
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
