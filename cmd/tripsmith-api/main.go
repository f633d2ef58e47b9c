// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripsmith/internal/ai"
	"tripsmith/internal/config"
	httptransport "tripsmith/internal/http"
	"tripsmith/internal/infra"
	"tripsmith/internal/maps"
	"tripsmith/internal/modules/account"
	"tripsmith/internal/modules/trip"
	"tripsmith/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(os.Getenv("TRIPSMITH_ENV") == "development")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		zlog.Fatal("TRIPSMITH_FIREBASE_PROJECT_ID is required")
	}
	fb, err := infra.NewFirebase(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		zlog.Fatal("firebase init", zap.Error(err))
	}
	defer fb.Close()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		zlog.Fatal("gemini init", zap.Error(err))
	}
	defer provider.Close()
	if !provider.Configured() {
		zlog.Warn("GEMINI_API_KEY is not set; generation routes will report the provider as unconfigured")
	}

	var resolver trip.DestinationResolver
	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			zlog.Fatal("maps init", zap.Error(err))
		}
		resolver = geocoder
	}

	guard := trip.NewInflightGuard(nil)
	if cfg.Redis.Addr != "" {
		guard = trip.NewInflightGuard(infra.NewRedis(cfg.Redis.Addr))
	}

	tripSvc := trip.NewService(provider, resolver, zlog)
	tripStore := trip.NewStore(fb.Firestore)
	accountSvc := account.NewService(fb.Auth, cfg.Firebase.WebAPIKey)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:    tripSvc,
		Store:    tripStore,
		Guard:    guard,
		Accounts: accountSvc,
		Verifier: fb.Verifier(),
		Log:      zlog,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server", zap.Error(err))
	}
}
