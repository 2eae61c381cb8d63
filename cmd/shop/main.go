package main

import (
	"bufio"
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ariefcatur/go-retail-console.git/internal/accounts"
	"github.com/ariefcatur/go-retail-console.git/internal/catalog"
	"github.com/ariefcatur/go-retail-console.git/internal/config"
	"github.com/ariefcatur/go-retail-console.git/internal/console"
	"github.com/ariefcatur/go-retail-console.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-retail-console.git/internal/kafka"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
	"github.com/ariefcatur/go-retail-console.git/internal/postgres"
	"github.com/ariefcatur/go-retail-console.git/internal/redisx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB + schema
	if err := postgres.Migrate(cfg.PostgresDSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis (optional)
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redisx.New(cfg.RedisAddr)
		defer rdb.Close()
	}

	// Kafka producer (optional)
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderLifecycle, 1024)
		prod.Start(ctx)
	}

	// Services
	accountSvc := &accounts.Service{Store: &accounts.Repo{DB: db}}
	catalogRepo := &catalog.Repo{DB: db}
	orderRepo := &orders.Repo{DB: db}
	orderSvc := &orders.Service{Store: orderRepo, Redis: rdb, Name: cfg.ServiceName}
	if prod != nil {
		orderSvc.Events = prod
	}

	// Storefront API (optional, read-only)
	var srv *http.Server
	if cfg.HTTPAddr != "" {
		router := httpx.NewRouter()
		sh := &httpx.StorefrontHandler{Products: catalogRepo, Orders: orderRepo, Redis: rdb}
		sh.Register(router)
		srv = &http.Server{Addr: cfg.HTTPAddr, Handler: router}
		go func() {
			log.Printf("storefront API listening at %s", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("listen: %v", err)
			}
		}()
	}

	// Console loop sampai user pilih Exit
	shell := &console.Shell{
		In:       bufio.NewScanner(os.Stdin),
		Out:      os.Stdout,
		Accounts: accountSvc,
		Catalog:  catalogRepo,
		Orders:   orderSvc,
	}
	shell.Run(ctx)

	// graceful shutdown
	if srv != nil {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = srv.Shutdown(ctx2)
	}
	if prod != nil {
		prod.Close()      // tutup inbox -> flush & close writer
		prod.WaitClosed() // drain
	}
	cancel()
}
