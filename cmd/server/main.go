package main

import (
	"context"
	"errors"
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"care-assessment/backend/internal/ai"
	"care-assessment/backend/internal/api"
	"care-assessment/backend/internal/assessment"
	"care-assessment/backend/internal/config"
)

func main() {
	dotenv := flag.String("env-file", ".env", "optional dotenv file")
	flag.Parse()

	cfg, err := config.Load(*dotenv)
	if err != nil {
		logrus.Fatalf("load configuration: %v", err)
	}
	if err := cfg.SetupLogging(); err != nil {
		logrus.Fatalf("configure logging: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	variant, err := assessment.Lookup(cfg.Variant)
	if err != nil {
		logrus.Fatalf("select variant: %v", err)
	}
	variant = variant.WithModel(cfg.GeminiModel)

	var generator ai.Generator
	client, err := ai.NewClient(context.Background(), ai.Config{
		APIKey:   cfg.GeminiAPIKey,
		Endpoint: cfg.GeminiEndpoint,
	})
	switch {
	case errors.Is(err, ai.ErrDisabled):
		logrus.Warn("GEMINI_API_KEY not set - assessment requests will fail until it is configured")
	case err != nil:
		logrus.Fatalf("create gemini client: %v", err)
	default:
		generator = client
		defer client.Close()
	}

	server, err := api.NewServer(api.Config{
		Variant:        variant,
		AllowedOrigins: cfg.Origins(),
	}, generator)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"variant":    variant.Name,
		"model":      variant.Model,
		"ai_enabled": generator != nil,
	}).Infof("starting care assessment backend on %s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		logrus.Errorf("server exited: %v", err)
	}
}
