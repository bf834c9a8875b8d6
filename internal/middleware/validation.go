package middleware

import (
	"context"
	"net/http"

	"apigw-contract/pkg/apigw"
	"apigw-contract/pkg/lambda"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimiter rejects requests above requestsPerSecond with a 429 response.
// A non-positive rate disables limiting.
func RateLimiter(logger *logrus.Logger, requestsPerSecond float64, burstSize int) Middleware {
	if requestsPerSecond <= 0 {
		return func(next lambda.HandlerFunc) lambda.HandlerFunc { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)

	return func(next lambda.HandlerFunc) lambda.HandlerFunc {
		return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
			if !limiter.Allow() {
				logger.WithFields(logrus.Fields{
					"request_id": RequestIDFromContext(ctx),
					"method":     req.Method,
					"path":       req.Path,
				}).Warn("Rate limit exceeded")

				return lambda.ErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded"), nil
			}

			return next(ctx, req)
		}
	}
}

// ResponseContract replaces responses that do not satisfy the API Gateway
// response shape with a 500 JSON error.
func ResponseContract(logger *logrus.Logger) Middleware {
	return func(next lambda.HandlerFunc) lambda.HandlerFunc {
		return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
			resp, err := next(ctx, req)
			if err != nil || resp == nil {
				return resp, err
			}

			if !apigw.IsAPIGatewayResponse(resp.ProxyResponse()) {
				logger.WithFields(logrus.Fields{
					"request_id":   RequestIDFromContext(ctx),
					"method":       req.Method,
					"path":         req.Path,
					"status_code":  resp.StatusCode,
					"content_type": resp.Headers[apigw.ContentTypeHeader],
				}).Warn("Handler response does not satisfy the gateway response contract")

				return lambda.ErrorResponse(http.StatusInternalServerError, "Malformed handler response"), nil
			}

			return resp, nil
		}
	}
}
