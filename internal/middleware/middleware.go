package middleware

import (
	"context"
	"fmt"
	"net/http"

	"apigw-contract/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// Middleware wraps a handler with additional behaviour
type Middleware func(next lambda.HandlerFunc) lambda.HandlerFunc

// Chain applies middlewares to h. The first middleware is the outermost.
func Chain(h lambda.HandlerFunc, middlewares ...Middleware) lambda.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// CORS adds Cross-Origin Resource Sharing headers and answers preflight requests
func CORS() Middleware {
	return func(next lambda.HandlerFunc) lambda.HandlerFunc {
		return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
			var resp *lambda.Response
			if req.Method == http.MethodOptions {
				resp = &lambda.Response{
					StatusCode: http.StatusNoContent,
					Headers:    map[string]string{"Content-Type": "application/json"},
				}
			} else {
				var err error
				resp, err = next(ctx, req)
				if err != nil || resp == nil {
					return resp, err
				}
			}

			if resp.Headers == nil {
				resp.Headers = map[string]string{}
			}
			resp.Headers["Access-Control-Allow-Origin"] = "*"
			resp.Headers["Access-Control-Allow-Methods"] = "GET, POST, PUT, DELETE, OPTIONS"
			resp.Headers["Access-Control-Allow-Headers"] = "Origin, Content-Type, Accept-Encoding, Authorization, X-Request-ID"

			return resp, nil
		}
	}
}

// Recover converts handler panics into errors so the adapter answers with a 500
func Recover(logger *logrus.Logger) Middleware {
	return func(next lambda.HandlerFunc) lambda.HandlerFunc {
		return func(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.WithFields(logrus.Fields{
						"method": req.Method,
						"path":   req.Path,
						"panic":  r,
					}).Error("Handler panicked")
					resp, err = nil, fmt.Errorf("handler panic: %v", r)
				}
			}()

			return next(ctx, req)
		}
	}
}
