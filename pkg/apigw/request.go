package apigw

import (
	"bytes"
	"encoding/json"
	"maps"
)

// RequestOptions holds the caller-supplied inputs of a request envelope.
// Every field is optional:
//   - Body: any JSON-serializable value, nil means an empty object
//   - Method, Path: empty string when unset
//   - QueryStringObject, PathParametersObject, StageVariables: nil stays nil
//     and serializes as null
type RequestOptions struct {
	Body                 any               `mapstructure:"body"`
	Method               string            `mapstructure:"method"`
	Path                 string            `mapstructure:"path"`
	QueryStringObject    map[string]string `mapstructure:"queryStringObject"`
	PathParametersObject map[string]string `mapstructure:"pathParametersObject"`
	StageVariables       map[string]string `mapstructure:"stageVariables"`
}

// Builder builds request envelopes. A Builder is immutable and safe for
// concurrent use.
type Builder struct {
	requestTimeEpoch int64
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithRequestTimeEpoch overrides the requestTimeEpoch placeholder
func WithRequestTimeEpoch(epoch int64) BuilderOption {
	return func(b *Builder) {
		b.requestTimeEpoch = epoch
	}
}

// NewBuilder creates a Builder using DefaultRequestTimeEpoch unless overridden
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{requestTimeEpoch: DefaultRequestTimeEpoch}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// APIGatewayRequest builds a fully populated envelope with the default builder
func APIGatewayRequest(opts RequestOptions) (*RequestEnvelope, error) {
	return defaultBuilder.Build(opts)
}

// RequestTimeEpoch returns the epoch placeholder this builder writes
func (b *Builder) RequestTimeEpoch() int64 {
	return b.requestTimeEpoch
}

// Build creates a new envelope from opts. The only error it returns is a
// *SerializationError when opts.Body cannot be encoded.
func (b *Builder) Build(opts RequestOptions) (*RequestEnvelope, error) {
	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}

	return &RequestEnvelope{
		Body:                            body,
		Headers:                         map[string]string{},
		MultiValueHeaders:               map[string][]string{},
		HTTPMethod:                      opts.Method,
		IsBase64Encoded:                 false,
		Path:                            opts.Path,
		PathParameters:                  maps.Clone(opts.PathParametersObject),
		QueryStringParameters:           maps.Clone(opts.QueryStringObject),
		MultiValueQueryStringParameters: nil,
		StageVariables:                  maps.Clone(opts.StageVariables),
		RequestContext: RequestContext{
			HTTPMethod:       opts.Method,
			Path:             opts.Path,
			RequestTimeEpoch: b.requestTimeEpoch,
		},
		Resource: "",
	}, nil
}

// encodeBody serializes the body without HTML escaping or a trailing newline
func encodeBody(body any) (string, error) {
	if body == nil {
		body = map[string]any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", &SerializationError{Value: body, Err: err}
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
