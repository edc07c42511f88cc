// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripwise/internal/http/middleware"
	"tripwise/internal/modules/eval"
	"tripwise/internal/modules/recommend"
	"tripwise/internal/modules/usage"
	"tripwise/pkg/logger"
)

// Recommender runs the full query-to-recommendation pipeline.
type Recommender interface {
	Process(ctx context.Context, query string, includeFlights bool, reqCtx map[string]string) (*recommend.TripRecommendation, error)
}

// Evaluator scores a finished recommendation.
type Evaluator interface {
	Evaluate(ctx context.Context, rec *recommend.TripRecommendation) eval.Metrics
}

type ServerDeps struct {
	Recommender Recommender
	Evaluator   Evaluator
	Recorder    *usage.Recorder
	Log         logger.Logger
}

type Server struct {
	recommender Recommender
	evaluator   Evaluator
	recorder    *usage.Recorder
	log         logger.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		recommender: deps.Recommender,
		evaluator:   deps.Evaluator,
		recorder:    deps.Recorder,
		log:         deps.Log,
	}
}

func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.log))
	r.Use(middleware.Logging(s.log))

	v1 := r.Group("/api/v1")
	v1.POST("/recommendations", s.HandleCreateRecommendation)
	v1.POST("/evaluations", s.HandleEvaluate)
	v1.GET("/metrics", s.HandleUsageMetrics)

	r.GET("/health", s.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
