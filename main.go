package main

import (
	"context"

	"github.com/AarazooSingh1506/autism-detction-system/internal/assessment"
	"github.com/AarazooSingh1506/autism-detction-system/internal/bootstrap"
	"github.com/AarazooSingh1506/autism-detction-system/internal/config"
	"github.com/AarazooSingh1506/autism-detction-system/internal/database"
	logger "github.com/AarazooSingh1506/autism-detction-system/internal/logging"
	"github.com/AarazooSingh1506/autism-detction-system/internal/router"

	"go.uber.org/zap"
)

func main() {
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := database.Init(log); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	scorer, questionnaire, err := bootstrap.Run(context.Background(), log)
	if err != nil {
		log.Fatal("Startup initialization failed", zap.Error(err))
	}

	flow := assessment.NewFlow(log, assessment.NewSimulatedSource(), scorer)
	r := router.Setup(log, questionnaire, flow)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
