package main

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/moneylens/backend/internal/advisor"
	"github.com/moneylens/backend/internal/auth"
	"github.com/moneylens/backend/internal/config"
	"github.com/moneylens/backend/internal/engine"
	"github.com/moneylens/backend/internal/service"
	"github.com/moneylens/backend/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx := context.Background()

	var st store.Store
	if cfg.UseMemoryStore {
		log.Info("[Server] using in-memory store")
		st = store.NewMemoryStore()
	} else {
		if cfg.ProjectID == "" {
			log.Fatal("[Server] GOOGLE_CLOUD_PROJECT is required for the Firestore store")
		}
		client, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			log.WithError(err).Fatal("[Server] failed to create Firestore client")
		}
		defer client.Close()
		st = store.NewFirestoreStore(client)
	}

	adv := advisor.New(cfg.AnthropicAPIKey, cfg.AdvisorModel)
	if adv == nil {
		log.Info("[Server] advisor disabled, no API key configured")
	}

	svc := service.NewFinanceService(st, engine.New(engine.DefaultThresholds()), adv, log)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	if cfg.SkipAuth || cfg.UseMemoryStore {
		log.Warn("[Server] auth disabled, trusting X-User-ID header")
		api.Use(auth.LocalDevMiddleware())
	} else {
		if cfg.JWTSecret == "" {
			log.Fatal("[Server] JWT_SECRET is required unless SKIP_AUTH=true")
		}
		api.Use(auth.Middleware(cfg.JWTSecret))
	}
	svc.Routes(api)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.DigestCron, func() {
		if err := svc.RunWeeklyDigests(context.Background()); err != nil {
			log.WithError(err).Error("[Server] weekly digest run failed")
		}
	}); err != nil {
		log.WithError(err).Fatal("[Server] invalid digest cron expression")
	}
	scheduler.Start()
	defer scheduler.Stop()

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"http://localhost:1234", "http://127.0.0.1:1234"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
	}).Handler(r)

	log.WithField("port", cfg.Port).Info("[Server] listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.WithError(err).Fatal("[Server] server stopped")
	}
}
