package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/okovalenko/filmfortoday/pkg/discovery"
	"github.com/okovalenko/filmfortoday/pkg/discovery/consul"
	"github.com/okovalenko/filmfortoday/pkg/tracing"
	"github.com/okovalenko/filmfortoday/rating/internal/controller/rating"
	httphandler "github.com/okovalenko/filmfortoday/rating/internal/handler/http"
	"github.com/okovalenko/filmfortoday/rating/internal/ingester/kafka"
	"github.com/okovalenko/filmfortoday/rating/internal/repository/mysql"
)

const serviceName = "rating"

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	f, err := os.Open("configs/default.yaml")
	if err != nil {
		logger.Fatal("Failed to open configuration", zap.Error(err))
	}
	var cfg config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		logger.Fatal("Failed to parse configuration", zap.Error(err))
	}
	port := cfg.API.Port
	logger.Info("Starting the rating service", zap.Int("port", port))

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init discovery service registry", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracer, tracerCloser, err := tracing.NewTracer(serviceName, cfg.Jaeger.Host, cfg.Jaeger.Port, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer tracerCloser.Close()
	opentracing.SetGlobalTracer(tracer)

	instanceID := discovery.GenerateInstanceID(serviceName)
	if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("localhost:%d", port)); err != nil {
		logger.Fatal("Failed to register service", zap.Error(err))
	}
	go func() {
		for {
			if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
				log.Println("Failed to report healthy state: " + err.Error())
			}
			time.Sleep(1 * time.Second)
		}
	}()
	defer registry.Deregister(ctx, instanceID, serviceName)

	repo, err := mysql.New(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to the rating store", zap.Error(err))
	}
	ingester, err := kafka.NewIngester(cfg.Kafka.Address, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
	if err != nil {
		logger.Fatal("Failed to initialize ingester", zap.Error(err))
	}
	ctrl := rating.New(repo, ingester)
	go func() {
		if err := ctrl.StartIngestion(ctx); err != nil {
			logger.Error("Rating event ingestion stopped", zap.Error(err))
		}
	}()

	secret := []byte(cfg.Auth.JWTSecret)
	h := httphandler.New(ctrl)
	mux := http.NewServeMux()
	mux.Handle("/rating", httphandler.Authenticate(func() []byte { return secret }, http.HandlerFunc(h.Handle)))
	mux.Handle("/rating/moods", httphandler.Authenticate(func() []byte { return secret }, http.HandlerFunc(h.HandleMoodVotes)))

	srv := &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", port),
		Handler: mux,
	}

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		logger.Info("Received signal, attempting graceful shutdown", zap.Any("signal", s))
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", zap.Error(err))
		}
		logger.Info("Gracefully stopped the HTTP server")
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to serve HTTP server", zap.Error(err))
	}
	wg.Wait()
}
