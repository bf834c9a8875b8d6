package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"apigw-contract/pkg/apigw"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyHandler is the signature aws-lambda-go expects for API Gateway proxy events
type ProxyHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ErrorBody is the JSON body written for error responses
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewRequest converts an API Gateway event to a generic request. Base64
// encoded bodies are decoded; an undecodable body is passed through as is.
func NewRequest(event events.APIGatewayProxyRequest) *Request {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(event.Body); err == nil {
			body = decoded
		}
	}

	return &Request{
		Method:         event.HTTPMethod,
		Path:           event.Path,
		Headers:        event.Headers,
		QueryParams:    event.QueryStringParameters,
		Body:           body,
		PathParams:     event.PathParameters,
		StageVariables: event.StageVariables,
		RequestID:      event.RequestContext.RequestID,
	}
}

// ProxyResponse converts the response to the API Gateway event type
func (r *Response) ProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// JSONResponse encodes v as a JSON response with the given status code
func JSONResponse(statusCode int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{apigw.ContentTypeHeader: apigw.ContentTypeJSON},
		Body:       body,
	}, nil
}

// ErrorResponse builds a JSON error response
func ErrorResponse(statusCode int, message string) *Response {
	body, _ := json.Marshal(ErrorBody{
		Error:   http.StatusText(statusCode),
		Message: message,
	})

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{apigw.ContentTypeHeader: apigw.ContentTypeJSON},
		Body:       body,
	}
}

// NotFound is the response for unrouted requests
func NotFound() *Response {
	return ErrorResponse(http.StatusNotFound, "Not found")
}

// Adapt wraps h as an aws-lambda-go proxy handler. Handler errors become a
// 500 JSON response instead of a Lambda invocation error.
func Adapt(h HandlerFunc) ProxyHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := h(ctx, NewRequest(event))
		if err != nil {
			return ErrorResponse(http.StatusInternalServerError, "Internal server error").ProxyResponse(), nil
		}
		if resp == nil {
			resp = NotFound()
		}

		return resp.ProxyResponse(), nil
	}
}
