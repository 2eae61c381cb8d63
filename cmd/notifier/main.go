package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ariefcatur/go-retail-console.git/internal/config"
	kafkax "github.com/ariefcatur/go-retail-console.git/internal/kafka"
	"github.com/ariefcatur/go-retail-console.git/internal/notify"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
	"github.com/ariefcatur/go-retail-console.git/internal/redisx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// atoiOr falls back to def on empty, non-numeric or non-positive input.
func atoiOr(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required for the notifier")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis dedup (optional)
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redisx.New(cfg.RedisAddr)
		defer rdb.Close()
	}

	svc := &notify.Service{
		Redis: rdb,
		Name:  cfg.ServiceName + "-notifier",
	}

	workers := atoiOr(os.Getenv("NOTIFIER_WORKERS"), 4)
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.NotifierGroup, orders.TopicOrderLifecycle, workers)

	go func() {
		log.Printf("notifier started: group=%s topic=%s workers=%d", cfg.NotifierGroup, orders.TopicOrderLifecycle, workers)
		if err := cons.Start(ctx, svc.HandleOrderEvent); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down notifier...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
