// README: Entry point; loads config, wires providers and module services, starts HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/config"
	httptransport "tripwise/internal/http"
	"tripwise/internal/modules/eval"
	"tripwise/internal/modules/flights"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/planner"
	"tripwise/internal/modules/recommend"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
	"tripwise/pkg/metrics"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	primary, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.PrimaryModel)
	if err != nil {
		log.Fatal("primary model init", "error", err)
	}
	defer primary.Close()

	judge, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.JudgeModel)
	if err != nil {
		log.Fatal("judge model init", "error", err)
	}
	defer judge.Close()

	recorder := usage.NewRecorder(metrics.New("tripwise"))

	extractor := intent.NewExtractor(primary, recorder, log)
	tripPlanner := planner.NewPlanner(primary, recorder, log)

	var searcher recommend.FlightSearcher
	if cfg.Flights.Live {
		searcher = flights.NewClient(cfg.Flights.APIKey, cfg.Flights.APISecret,
			cfg.Flights.BaseURL, cfg.Flights.Timeout, log)
	}

	recommender := recommend.NewService(extractor, tripPlanner, searcher,
		cfg.Flights.Live, cfg.DefaultOrigin, log)
	evaluator := eval.NewService(judge, recorder, log)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Recommender: recommender,
		Evaluator:   evaluator,
		Recorder:    recorder,
		Log:         log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("server starting", "addr", cfg.HTTP.Addr,
		"primary_model", cfg.AI.PrimaryModel, "judge_model", cfg.AI.JudgeModel,
		"live_flights", cfg.Flights.Live)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", "error", err)
	}
}
