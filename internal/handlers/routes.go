package handlers

import (
	"context"
	"net/http"

	"apigw-contract/pkg/lambda"
)

// NewRouter routes requests to the echo handler
func NewRouter(echo *EchoHandler) lambda.HandlerFunc {
	return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		switch {
		case req.Method == http.MethodGet && req.Path == "/health":
			return echo.HandleHealth(ctx, req)
		case req.Path == "/echo" || req.PathParams["proxy"] != "":
			return echo.HandleEcho(ctx, req)
		default:
			return lambda.NotFound(), nil
		}
	}
}
