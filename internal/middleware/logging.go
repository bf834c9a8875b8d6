package middleware

import (
	"context"
	"time"

	"apigw-contract/pkg/lambda"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader is the header carrying the request ID
const RequestIDHeader = "X-Request-ID"

type contextKey string

// RequestIDKey is the context key holding the request ID
const RequestIDKey contextKey = "request_id"

// RequestIDFromContext returns the request ID stored by RequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// RequestID assigns a request ID, preferring the X-Request-ID header, then the
// gateway request ID, then a fresh UUID. The ID is echoed on the response.
func RequestID() Middleware {
	return func(next lambda.HandlerFunc) lambda.HandlerFunc {
		return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
			requestID := req.Headers[RequestIDHeader]
			if requestID == "" {
				requestID = req.RequestID
			}
			if requestID == "" {
				requestID = uuid.New().String()
			}

			resp, err := next(context.WithValue(ctx, RequestIDKey, requestID), req)
			if resp != nil {
				if resp.Headers == nil {
					resp.Headers = map[string]string{}
				}
				resp.Headers[RequestIDHeader] = requestID
			}

			return resp, err
		}
	}
}

// StructuredLogger logs every request with its outcome and latency
func StructuredLogger(logger *logrus.Logger) Middleware {
	return func(next lambda.HandlerFunc) lambda.HandlerFunc {
		return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			fields := logrus.Fields{
				"request_id": RequestIDFromContext(ctx),
				"method":     req.Method,
				"path":       req.Path,
				"latency_ms": float64(time.Since(start).Nanoseconds()) / 1000000,
			}

			if err != nil {
				logger.WithFields(fields).WithError(err).Error("Request failed")
				return resp, err
			}

			status := 0
			if resp != nil {
				status = resp.StatusCode
				fields["response_size"] = len(resp.Body)
			}
			fields["status_code"] = status

			// Log based on status code
			switch {
			case status >= 500:
				logger.WithFields(fields).Error("Server error")
			case status >= 400:
				logger.WithFields(fields).Warn("Client error")
			default:
				logger.WithFields(fields).Info("Request completed")
			}

			return resp, nil
		}
	}
}
