package main

import (
	"fmt"
	"os"

	"github.com/hsvanberg/offert-service/internal/config"
	"github.com/hsvanberg/offert-service/internal/db"
	"github.com/hsvanberg/offert-service/internal/excel"
	httphandler "github.com/hsvanberg/offert-service/internal/http"
	"github.com/hsvanberg/offert-service/internal/logger"
	"github.com/hsvanberg/offert-service/internal/notify"
	"github.com/hsvanberg/offert-service/internal/pdf"
	"github.com/hsvanberg/offert-service/internal/repository"
	"github.com/hsvanberg/offert-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	quoteRepo := repository.NewQuoteRepository(database)
	notifier := notify.NewLogNotifier(log)
	pdfGenerator := pdf.NewGenerator()
	excelGenerator := excel.NewGenerator()

	quoteService := service.NewQuoteService(quoteRepo, notifier, pdfGenerator, excelGenerator, cfg)

	handler := httphandler.NewHandler(quoteService, log)
	router := httphandler.NewRouter(handler, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting offert service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
