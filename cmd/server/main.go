package main

import (
	"context"
	"log"
	"time"

	"github.com/textloom/rephrase-api/internal/config"
	"github.com/textloom/rephrase-api/internal/db"
	"github.com/textloom/rephrase-api/internal/httpapi"
	"github.com/textloom/rephrase-api/internal/store/rabbitmq"
	"github.com/textloom/rephrase-api/internal/store/redisstore"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)

	rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := rds.Ping(ctx); err != nil {
		log.Printf("redis ping failed (captcha flows will error): %v", err)
	}
	cancel()

	rabbit, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		// welcome mails degrade to dropped jobs; API stays up
		log.Printf("rabbit connect failed (welcome emails disabled): %v", err)
		rabbit = nil
	} else {
		defer rabbit.Close()
	}

	r := httpapi.NewRouter(gdb, cfg, rds, rabbit)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
