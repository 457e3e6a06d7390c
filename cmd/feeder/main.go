package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thermora/backend/internal/catalog"
	"github.com/thermora/backend/internal/config"
	"github.com/thermora/backend/internal/feeder"
	"github.com/thermora/backend/internal/repository"
	"github.com/thermora/backend/internal/synth"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks []feeder.Sink

	if cfg.StoreDriver != config.DriverMemory || cfg.InfluxEnabled() {
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		store, closeStore := repository.Open(openCtx, cfg)
		defer closeStore()

		if err := feeder.SeedTopology(openCtx, store); err != nil {
			log.Printf("Warning: %v", err)
		}
		if err := feeder.SeedHotspots(openCtx, store, time.Now(), loc); err != nil {
			log.Printf("Warning: %v", err)
		}
		cancel()

		sinks = append(sinks, feeder.NewStoreSink(store))
	}

	if cfg.KafkaEnabled() {
		sinks = append(sinks, feeder.NewKafkaSink(feeder.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)))
		log.Printf("Publishing to Kafka topic %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	if len(sinks) == 0 {
		log.Fatal("Nothing to feed: set STORE_DRIVER, INFLUXDB_URL or KAFKA_BROKERS")
	}

	f := feeder.New(synth.NewRand(cfg.RandomSeed), loc, catalog.Locations(), cfg.FeederInterval, sinks...)
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Feeder close error: %v", err)
		}
	}()

	if err := f.Run(ctx); err != nil {
		log.Printf("Feeder error: %v", err)
	}
}
