package apigw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsFromMap(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		opts, err := OptionsFromMap(map[string]any{
			"body":                 map[string]any{"key": "value"},
			"method":               "POST",
			"path":                 "/example",
			"queryStringObject":    map[string]any{"key": "value"},
			"pathParametersObject": map[string]any{"id": "123"},
			"stageVariables":       map[string]string{"stage": "dev"},
		})
		if err != nil {
			t.Fatalf("OptionsFromMap failed: %v", err)
		}

		if diff := cmp.Diff(sourceScenarioOptions(), opts); diff != "" {
			t.Errorf("Options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		opts, err := OptionsFromMap(map[string]any{})
		if err != nil {
			t.Fatalf("OptionsFromMap failed: %v", err)
		}
		if diff := cmp.Diff(RequestOptions{}, opts); diff != "" {
			t.Errorf("Expected zero options (-want +got):\n%s", diff)
		}
	})

	t.Run("NilMap", func(t *testing.T) {
		opts, err := OptionsFromMap(nil)
		if err != nil {
			t.Fatalf("OptionsFromMap failed: %v", err)
		}
		if opts.Body != nil || opts.QueryStringObject != nil {
			t.Errorf("Expected zero options, got %+v", opts)
		}
	})

	t.Run("NullMapsStayNil", func(t *testing.T) {
		opts, err := OptionsFromMap(map[string]any{
			"queryStringObject":    nil,
			"pathParametersObject": nil,
			"stageVariables":       nil,
		})
		if err != nil {
			t.Fatalf("OptionsFromMap failed: %v", err)
		}
		if opts.QueryStringObject != nil || opts.PathParametersObject != nil || opts.StageVariables != nil {
			t.Errorf("Expected nil maps, got %+v", opts)
		}
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := OptionsFromMap(map[string]any{"httpMethod": "GET"})
		if err == nil {
			t.Fatal("Expected error for unknown key")
		}
		var optsErr *OptionsError
		if !errors.As(err, &optsErr) {
			t.Errorf("Expected OptionsError, got %T", err)
		}
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := OptionsFromMap(map[string]any{"method": 42})
		if err == nil {
			t.Fatal("Expected error for non-string method")
		}
	})

	t.Run("BuildsSourceScenario", func(t *testing.T) {
		opts, err := OptionsFromMap(map[string]any{
			"body":   map[string]any{"key": "value"},
			"method": "POST",
			"path":   "/example",
		})
		if err != nil {
			t.Fatalf("OptionsFromMap failed: %v", err)
		}

		request, err := APIGatewayRequest(opts)
		if err != nil {
			t.Fatalf("APIGatewayRequest failed: %v", err)
		}
		if request.Body != `{"key":"value"}` {
			t.Errorf("Expected body {\"key\":\"value\"}, got %s", request.Body)
		}
	})
}
