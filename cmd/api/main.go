package main

import (
	"log"

	_ "scenario_planning/docs"
	"scenario_planning/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Scenario Planning API
// @version         1.0
// @description     Financial scenario planning: assumptions, projections, Monte Carlo simulation, sensitivity and comparison.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
