// README: Evaluation runner; executes a query corpus through the full pipeline and prints scores.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/config"
	"tripwise/internal/modules/eval"
	"tripwise/internal/modules/intent"
	"tripwise/internal/modules/planner"
	"tripwise/internal/modules/recommend"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
)

type Config struct {
	Set      string
	Flights  bool
	ExportTo string
	Timeout  time.Duration
	Strict   bool
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.Set, "set", envOrDefault("TRIPWISE_BENCH_SET", "quick"), "Query set: quick or full")
	flag.BoolVar(&cfg.Flights, "flights", envOrDefaultBool("TRIPWISE_BENCH_FLIGHTS", true), "Include flight pricing")
	flag.StringVar(&cfg.ExportTo, "export", envOrDefault("TRIPWISE_BENCH_EXPORT", ""), "Write full results JSON to this path")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("TRIPWISE_BENCH_TIMEOUT", 10*time.Minute), "Total timeout")
	flag.BoolVar(&cfg.Strict, "strict", envOrDefaultBool("TRIPWISE_BENCH_STRICT", false), "Exit non-zero on any failing grade")
	flag.Parse()
	return cfg
}

func main() {
	cfg := loadConfig()

	queries := quickQueries
	if cfg.Set == "full" {
		queries = fullQueries
	}

	appCfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	log := logger.NewNop()

	primary, err := ai.NewGeminiProvider(ctx, appCfg.AI.GeminiKey, appCfg.AI.PrimaryModel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer primary.Close()

	judge, err := ai.NewGeminiProvider(ctx, appCfg.AI.GeminiKey, appCfg.AI.JudgeModel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer judge.Close()

	recorder := usage.NewRecorder(nil)
	recommender := recommend.NewService(
		intent.NewExtractor(primary, recorder, log),
		planner.NewPlanner(primary, recorder, log),
		nil, false, appCfg.DefaultOrigin, log,
	)
	evaluator := eval.NewService(judge, recorder, log)

	fmt.Printf("Running %d queries (%s set)\n\n", len(queries), cfg.Set)

	recs := make([]*recommend.TripRecommendation, 0, len(queries))
	metrics := make([]eval.Metrics, 0, len(queries))
	failures := 0

	for i, q := range queries {
		fmt.Printf("[%d/%d] %s\n", i+1, len(queries), truncateQuery(q.Query))

		rec, err := recommender.Process(ctx, q.Query, cfg.Flights, nil)
		if err != nil {
			fmt.Printf("        FAIL - %v\n\n", err)
			failures++
			continue
		}

		m := evaluator.Evaluate(ctx, rec)
		recs = append(recs, rec)
		metrics = append(metrics, m)

		fmt.Printf("        grade=%s score=%.1f cost=$%.2f latency=%.0fms", m.Grade, m.OverallScore, rec.TotalCostEstimate, m.LatencyMs)
		if q.ExpectedDestination != "" {
			fmt.Printf(" expected=%s", q.ExpectedDestination)
		}
		fmt.Println()
		if len(m.ErrorMessages) > 0 {
			fmt.Printf("        issues: %s\n", strings.Join(m.ErrorMessages, "; "))
		}
		fmt.Println()
	}

	report := summarize(metrics, recorder)
	printReport(report, failures)

	if cfg.ExportTo != "" {
		if err := exportResults(cfg.ExportTo, recs, metrics, report, recorder); err != nil {
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nResults written to %s\n", cfg.ExportTo)
	}

	if failures > 0 {
		os.Exit(1)
	}
	if cfg.Strict && report.GradeDistribution["F"] > 0 {
		os.Exit(1)
	}
}

// summarize folds per-query metrics into a batch report without re-running
// the judge. Total cost reads the recorder's running total.
func summarize(metrics []eval.Metrics, recorder *usage.Recorder) eval.BatchReport {
	report := eval.BatchReport{
		TotalEvaluated:    len(metrics),
		GradeDistribution: make(map[string]int),
	}
	var scoreSum, latencySum float64
	for _, m := range metrics {
		report.GradeDistribution[m.Grade]++
		scoreSum += m.OverallScore
		latencySum += m.LatencyMs
	}
	if len(metrics) > 0 {
		n := float64(len(metrics))
		report.AverageScore = math.Round(scoreSum/n*100) / 100
		report.AverageLatencyMs = math.Round(latencySum/n*100) / 100
	}
	report.TotalCostUSD = math.Round(recorder.TotalCostUSD()*10000) / 10000
	return report
}

func truncateQuery(q string) string {
	if len(q) <= 70 {
		return q
	}
	return q[:67] + "..."
}

func printReport(report eval.BatchReport, failures int) {
	fmt.Println("== Summary ==")
	fmt.Printf("evaluated=%d failures=%d\n", report.TotalEvaluated, failures)
	fmt.Printf("average score: %.2f\n", report.AverageScore)
	fmt.Printf("average latency: %.2fms\n", report.AverageLatencyMs)
	fmt.Printf("total model cost: $%.4f\n", report.TotalCostUSD)
	for _, grade := range []string{"A", "B", "C", "D", "F"} {
		if n := report.GradeDistribution[grade]; n > 0 {
			fmt.Printf("  %s: %d\n", grade, n)
		}
	}
}

type exportPayload struct {
	Report          eval.BatchReport                `json:"report"`
	Recommendations []*recommend.TripRecommendation `json:"recommendations"`
	Usage           usage.Export                    `json:"usage"`
}

func exportResults(path string, recs []*recommend.TripRecommendation, metrics []eval.Metrics, report eval.BatchReport, recorder *usage.Recorder) error {
	report.AllMetrics = metrics
	data, err := json.MarshalIndent(exportPayload{
		Report:          report,
		Recommendations: recs,
		Usage:           recorder.ExportData(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
