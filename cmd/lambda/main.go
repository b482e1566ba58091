package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rrinconline/sticker-lab-backend/app"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/logger"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.New(context.Background(), cfg, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	lambda.Start(newHandler(application.Orchestrator).Handle)
}
