package routes

import (
	"scenario_planning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathScenarios = "/scenarios"
)

func addScenarioRoutes(rg *gin.RouterGroup, scenarioHandler *handlers.ScenarioHandler, analysisHandler *handlers.AnalysisHandler) {
	scenarios := rg.Group(PathScenarios)
	{
		scenarios.POST("", scenarioHandler.CreateScenario)
		scenarios.GET("", scenarioHandler.ListScenarios)
		scenarios.POST("/compare", analysisHandler.Compare)

		scenarios.GET("/:id", scenarioHandler.GetScenario)
		scenarios.PATCH("/:id", scenarioHandler.UpdateScenario)
		scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
		scenarios.POST("/:id/approve", scenarioHandler.ApproveScenario)
		scenarios.POST("/:id/clone", scenarioHandler.CloneScenario)
		scenarios.GET("/:id/versions", scenarioHandler.ListVersions)
		scenarios.POST("/:id/score", scenarioHandler.ScoreScenario)

		scenarios.POST("/:id/simulate", analysisHandler.Simulate)
		scenarios.POST("/:id/sensitivity", analysisHandler.Sensitivity)
	}
}
