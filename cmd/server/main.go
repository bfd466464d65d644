package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/api"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/config"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/extract"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/genai"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/images"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize clients. Gemini is constructed whenever a key is present:
	// even with OpenAI as the text provider it still serves image OCR.
	var gemini *genai.GeminiClient
	if cfg.GeminiAPIKey != "" {
		gemini = genai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	var generator genai.TextGenerator
	var stats *genai.Stats
	switch cfg.AIProvider {
	case "openai":
		oc, err := genai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			log.Error("openai client", "error", err)
			os.Exit(1)
		}
		generator = oc
	default:
		generator = gemini
		stats = gemini.Stats
	}

	var ocr genai.Transcriber
	if gemini != nil {
		ocr = gemini
	}
	extractor := extract.New(ocr, log, cfg.MaxConcurrentExtract)

	pixabay := images.NewClient(cfg.PixabayAPIKey)

	projects, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Error("open project store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(generator, stats, extractor, pixabay, projects, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if gemini != nil {
			gemini.Close()
		}
		projects.Close()
	}()

	log.Info("starting papergen", "port", cfg.Port, "provider", cfg.AIProvider)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
