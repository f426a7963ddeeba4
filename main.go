package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/api/handlers"
	"github.com/linesmerrill/dispute-evidence-api/config"
)

func main() {
	conf, err := config.New(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defer zap.L().Sync()

	a := handlers.App{Config: *conf}
	if err := a.Initialize(context.Background()); err != nil {
		zap.S().Fatalw("failed to initialize relay", "error", err)
	}

	zap.S().Infow("dispute-evidence-api is up and running",
		"port", conf.Port,
		"url", conf.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", conf.Port), a.Router))
}
