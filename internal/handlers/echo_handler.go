package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"apigw-contract/internal/middleware"
	"apigw-contract/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// EchoResponse describes the request the handler received
type EchoResponse struct {
	RequestID             string            `json:"requestId"`
	Method                string            `json:"method"`
	Path                  string            `json:"path"`
	PathParameters        map[string]string `json:"pathParameters"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	StageVariables        map[string]string `json:"stageVariables"`
	Body                  json.RawMessage   `json:"body"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Stage   string `json:"stage"`
}

// EchoHandler reports back the envelope fields it receives
type EchoHandler struct {
	stage  string
	logger *logrus.Logger
}

// NewEchoHandler creates a new echo handler
func NewEchoHandler(stage string, logger *logrus.Logger) *EchoHandler {
	return &EchoHandler{
		stage:  stage,
		logger: logger,
	}
}

// HandleEcho echoes the request. The body must be empty or valid JSON.
func (h *EchoHandler) HandleEcho(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	body := json.RawMessage("null")
	if len(req.Body) > 0 {
		if !json.Valid(req.Body) {
			h.logger.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFromContext(ctx),
				"path":       req.Path,
				"error":      ErrInvalidJSONBody.Error(),
			}).Debug("Rejecting request body")
			return lambda.ErrorResponse(http.StatusBadRequest, ErrInvalidJSONBody.Error()), nil
		}
		body = json.RawMessage(req.Body)
	}

	return lambda.JSONResponse(http.StatusOK, EchoResponse{
		RequestID:             middleware.RequestIDFromContext(ctx),
		Method:                req.Method,
		Path:                  req.Path,
		PathParameters:        req.PathParams,
		QueryStringParameters: req.QueryParams,
		StageVariables:        req.StageVariables,
		Body:                  body,
	})
}

// HandleHealth reports service health
func (h *EchoHandler) HandleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSONResponse(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "apigw-echo",
		Stage:   h.stage,
	})
}
