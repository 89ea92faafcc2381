package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"marketgps/api"
	"marketgps/internal"
	"marketgps/internal/logger"
	"marketgps/internal/repository"
	l2_service "marketgps/internal/service/l2"
	l3_service "marketgps/internal/service/l3"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	strategyTemplateRepository := repository.NewStrategyTemplateRepository(dbConn)
	weightExpressionService := l2_service.NewWeightExpressionService()
	builderService := l3_service.NewBuilderService(
		strategyTemplateRepository,
		weightExpressionService,
	)

	apiHandler := &api.ApiHandler{
		Db:                         dbConn,
		Logger:                     logger.New(),
		BuilderService:             builderService,
		StrategyTemplateRepository: strategyTemplateRepository,
		JwtDecodeToken:             secrets.Jwt,
	}

	return apiHandler, nil
}
