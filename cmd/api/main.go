package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"promptstudio/internal/character"
	"promptstudio/internal/http/handlers"
	httpapi "promptstudio/internal/http/httpapi"
	"promptstudio/internal/imaging/transcode"
	"promptstudio/internal/infra"
	"promptstudio/internal/infra/geoip"
	"promptstudio/internal/middleware"
	"promptstudio/internal/providers/gemini"
	"promptstudio/internal/providers/imagen"
	"promptstudio/internal/storage"
	"promptstudio/internal/studio"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	if err := cfg.RequireGemini(); err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	completer, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create gemini client")
	}

	images := imagen.NewClient(imagen.Options{
		BaseURL:        cfg.ImagenBaseURL,
		Model:          cfg.ImagenModel,
		Logger:         &logger,
		RequestTimeout: cfg.ImagenTimeout,
	})

	svc := studio.NewService(studio.Options{
		Completer:     completer,
		Images:        images,
		Models:        studio.Models{Pro: cfg.GeminiModel, Fast: cfg.GeminiFastModel},
		Builder:       character.Builder{NamePlacement: character.ParseNamePlacement(cfg.CharacterNamePlacement)},
		BatchLimit:    cfg.BatchConcurrency,
		ImageInterval: cfg.ImageBatchInterval,
		ImageBurst:    cfg.ImageBatchBurst,
		Output:        transcode.ForFormat(cfg.ImageOutputFormat, cfg.WebPQuality),
		Logger:        &logger,
	})

	var lookup middleware.CountryLookup
	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	var archives handlers.ArchiveStore
	if cfg.ArchiveDir != "" {
		store, err := storage.NewFileStore(cfg.ArchiveDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure archive storage")
		}
		archives = store
	}

	app := handlers.NewApp(handlers.Options{
		Studio:         svc,
		Archives:       archives,
		Logger:         &logger,
		MaxUpload:      cfg.MaxUploadBytes,
		ImageToken:     cfg.ImagenToken,
		AllowedOrigins: cfg.CORSOrigins,
	})

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		CORSOrigins:     cfg.CORSOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   lookup,
		RateLimitPerMin: cfg.RateLimitPerMin,
		TrustProxy:      cfg.TrustProxyHeaders,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("model", cfg.GeminiModel).
			Str("image_format", cfg.ImageOutputFormat).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
