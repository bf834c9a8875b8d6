package main

import (
	"apigw-contract/internal/config"
	"apigw-contract/internal/handlers"
	"apigw-contract/internal/middleware"
	"apigw-contract/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var handler lambda.ProxyHandler

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger := config.NewLogger(cfg.Log)
	sc := config.GetServerlessConfig()
	logger.WithFields(logrus.Fields{
		"function":    sc.FunctionName,
		"region":      sc.Region,
		"stage":       cfg.Stage,
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
	}).Info("Initializing echo function")

	router := handlers.NewRouter(handlers.NewEchoHandler(cfg.Stage, logger))
	handler = lambda.Adapt(middleware.Chain(router,
		middleware.Recover(logger),
		middleware.RequestID(),
		middleware.StructuredLogger(logger),
		middleware.CORS(),
		middleware.RateLimiter(logger, cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		middleware.ResponseContract(logger),
	))
}

func main() {
	awslambda.Start(handler)
}
