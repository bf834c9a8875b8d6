package apigw

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// DefaultRequestTimeEpoch is the placeholder written to requestContext.requestTimeEpoch.
// It is never sampled from the clock so that built envelopes are reproducible.
const DefaultRequestTimeEpoch int64 = 3

// RequestEnvelope represents an inbound API Gateway proxy request.
// Field names and order follow the proxy integration payload.
type RequestEnvelope struct {
	Body                            string              `json:"body"`
	Headers                         map[string]string   `json:"headers"`
	MultiValueHeaders               map[string][]string `json:"multiValueHeaders"`
	HTTPMethod                      string              `json:"httpMethod"`
	IsBase64Encoded                 bool                `json:"isBase64Encoded"`
	Path                            string              `json:"path"`
	PathParameters                  map[string]string   `json:"pathParameters"`
	QueryStringParameters           map[string]string   `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string `json:"multiValueQueryStringParameters"`
	StageVariables                  map[string]string   `json:"stageVariables"`
	RequestContext                  RequestContext      `json:"requestContext"`
	Resource                        string              `json:"resource"`
}

// RequestContext holds the gateway metadata nested inside a RequestEnvelope
type RequestContext struct {
	AccountID        string          `json:"accountId"`
	APIID            string          `json:"apiId"`
	HTTPMethod       string          `json:"httpMethod"`
	Identity         IdentityContext `json:"identity"`
	Path             string          `json:"path"`
	Stage            string          `json:"stage"`
	RequestID        string          `json:"requestId"`
	RequestTimeEpoch int64           `json:"requestTimeEpoch"`
	ResourceID       string          `json:"resourceId"`
	ResourcePath     string          `json:"resourcePath"`
}

// IdentityContext holds caller identity fields. The builder always leaves them empty.
type IdentityContext struct {
	AccessKey                     string `json:"accessKey"`
	AccountID                     string `json:"accountId"`
	APIKey                        string `json:"apiKey"`
	APIKeyID                      string `json:"apiKeyId"`
	Caller                        string `json:"caller"`
	CognitoAuthenticationProvider string `json:"cognitoAuthenticationProvider"`
	CognitoAuthenticationType     string `json:"cognitoAuthenticationType"`
	CognitoIdentityID             string `json:"cognitoIdentityId"`
	CognitoIdentityPoolID         string `json:"cognitoIdentityPoolId"`
	PrincipalOrgID                string `json:"principalOrgId"`
	SourceIP                      string `json:"sourceIp"`
	User                          string `json:"user"`
	UserAgent                     string `json:"userAgent"`
	UserArn                       string `json:"userArn"`
}

// ProxyRequest decodes the envelope into the aws-lambda-go event type, the same
// way the Lambda runtime delivers the payload to a handler.
func (e *RequestEnvelope) ProxyRequest() (events.APIGatewayProxyRequest, error) {
	var event events.APIGatewayProxyRequest

	data, err := json.Marshal(e)
	if err != nil {
		return event, fmt.Errorf("failed to encode request envelope: %w", err)
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("failed to decode proxy request: %w", err)
	}

	return event, nil
}
