package apigw

import (
	"github.com/mitchellh/mapstructure"
)

// OptionsFromMap decodes a loosely typed options object, as read from a JSON or
// YAML document, into RequestOptions. Recognised keys are body, method, path,
// queryStringObject, pathParametersObject and stageVariables. Unknown keys and
// values of the wrong type are rejected.
func OptionsFromMap(raw map[string]any) (RequestOptions, error) {
	var opts RequestOptions

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &opts,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return RequestOptions{}, &OptionsError{Err: err}
	}

	if err := decoder.Decode(raw); err != nil {
		return RequestOptions{}, &OptionsError{Err: err}
	}

	return opts, nil
}
