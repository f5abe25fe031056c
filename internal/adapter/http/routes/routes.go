package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	_ "scenario_planning/docs" // This will be auto-generated
	"scenario_planning/internal/adapter/http/handlers"
	"scenario_planning/internal/adapter/persistence/repository"
	"scenario_planning/internal/domain/forecast"
	"scenario_planning/internal/infrastructure/config"
	"scenario_planning/internal/infrastructure/database"
	"scenario_planning/internal/infrastructure/logger"
	"scenario_planning/internal/infrastructure/metrics"
	"scenario_planning/internal/usecase"
	"scenario_planning/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the wired components the router serves.
type Dependencies struct {
	Scenarios *handlers.ScenarioHandler
	Analysis  *handlers.AnalysisHandler
}

// Run will start the server
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flush, err := logger.Install(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("install logger: %w", err)
	}
	defer flush()

	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	repo, err := buildRepository(context.Background(), cfg)
	if err != nil {
		return err
	}

	router := NewRouter(Wire(cfg, repo, collector), collector.Handler())

	zap.L().Info("[server] starting", zap.Int("port", cfg.Port), zap.String("store", cfg.Store))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("startup the application: %w", err)
	}
	return nil
}

// Wire builds the use cases and handlers on top of repo.
func Wire(cfg config.Config, repo interfaces.IScenarioRepository, recorder interfaces.IAnalysisRecorder) Dependencies {
	scenarios := usecase.NewScenarioUseCase(repo, cfg.Baseline, recorder)
	simulation := usecase.NewSimulationUseCase(repo, scenarios, cfg.Baseline, forecast.NewRandSource(cfg.SimulationSeed), recorder)
	sensitivity := usecase.NewSensitivityUseCase(repo, scenarios, cfg.Baseline, recorder)
	comparison := usecase.NewComparisonUseCase(repo, recorder)

	return Dependencies{
		Scenarios: handlers.NewScenarioHandler(scenarios),
		Analysis:  handlers.NewAnalysisHandler(simulation, sensitivity, comparison),
	}
}

// NewRouter registers every route. A nil metricsHandler leaves /metrics out.
func NewRouter(deps Dependencies, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addScenarioRoutes(v1, deps.Scenarios, deps.Analysis)
	return router
}

func buildRepository(ctx context.Context, cfg config.Config) (interfaces.IScenarioRepository, error) {
	switch cfg.Store {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewScenarioDynamoRepository(ddb), nil
	default:
		return repository.NewScenarioMemoryRepository(), nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
