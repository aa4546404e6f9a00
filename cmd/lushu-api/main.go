// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lushu/internal/ai"
	"lushu/internal/config"
	httptransport "lushu/internal/http"
	"lushu/internal/infra"
	"lushu/internal/maps"
	"lushu/internal/modules/expense"
	"lushu/internal/modules/plan"
	"lushu/internal/modules/quota"
	"lushu/internal/voice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider ai.Provider
	switch cfg.AI.Provider {
	case "gemini":
		gp, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gp.Close()
		provider = gp
	default:
		provider = ai.NewZhipuProvider(cfg.AI.ZhipuKey)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	var geocoders []maps.Geocoder
	if cfg.Maps.AMapKey != "" {
		amap := maps.NewAMapGeocoder(cfg.Maps.AMapKey)
		geocoders = append(geocoders, maps.NewCachedGeocoder(amap, redisClient))
	}
	if cfg.Maps.GoogleKey != "" {
		google, err := maps.NewGoogleGeocoder(cfg.Maps.GoogleKey)
		if err != nil {
			log.Fatalf("google maps init: %v", err)
		}
		geocoders = append(geocoders, maps.NewCachedGeocoder(google, redisClient))
	}
	mapsSvc := maps.NewService(geocoders...)

	quotaStore := quota.NewStore(dbPool)
	quotaSvc := quota.NewService(quotaStore, cfg.Quota.DailyLimit)

	planStore := plan.NewStore(dbPool)
	planSvc := plan.NewService(planStore, provider, quotaSvc)

	expenseStore := expense.NewStore(dbPool)
	expenseSvc := expense.NewService(expenseStore, planSvc)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Verifier:  infra.NewJWTVerifier(cfg.Auth.JWTSecret),
		Extractor: voice.NewExtractor(voice.DefaultLexicon()),
		Parser:    provider,
		Plans:     planSvc,
		Expenses:  expenseSvc,
		Quota:     quotaSvc,
		Maps:      mapsSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
