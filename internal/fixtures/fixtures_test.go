package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"apigw-contract/pkg/apigw"
)

func TestLoadYAML(t *testing.T) {
	fixtures, err := Load(filepath.Join("testdata", "gateway.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(fixtures) != 6 {
		t.Fatalf("Expected 6 fixtures, got %d", len(fixtures))
	}

	fixture, ok := Find(fixtures, "create-example")
	if !ok {
		t.Fatal("Expected to find fixture 'create-example'")
	}

	envelope, err := fixture.Build(apigw.NewBuilder())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if envelope.Body != `{"key":"value"}` {
		t.Errorf("Expected body {\"key\":\"value\"}, got %s", envelope.Body)
	}
	if envelope.HTTPMethod != "POST" || envelope.RequestContext.HTTPMethod != "POST" {
		t.Errorf("Expected method POST, got %s/%s", envelope.HTTPMethod, envelope.RequestContext.HTTPMethod)
	}
	if envelope.PathParameters["id"] != "123" {
		t.Errorf("Expected path parameter id=123, got %v", envelope.PathParameters)
	}
	if envelope.StageVariables["stage"] != "dev" {
		t.Errorf("Expected stage variable stage=dev, got %v", envelope.StageVariables)
	}
	if envelope.RequestContext.RequestTimeEpoch != apigw.DefaultRequestTimeEpoch {
		t.Errorf("Expected requestTimeEpoch %d, got %d", apigw.DefaultRequestTimeEpoch, envelope.RequestContext.RequestTimeEpoch)
	}
}

func TestLoadJSON(t *testing.T) {
	fixtures, err := Load(filepath.Join("testdata", "gateway.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	envelope, err := fixtures[0].Build(apigw.NewBuilder(apigw.WithRequestTimeEpoch(42)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if envelope.QueryStringParameters != nil {
		t.Errorf("Expected null query parameters, got %v", envelope.QueryStringParameters)
	}
	if envelope.RequestContext.RequestTimeEpoch != 42 {
		t.Errorf("Expected requestTimeEpoch 42, got %d", envelope.RequestContext.RequestTimeEpoch)
	}
}

func TestDefaultsFixture(t *testing.T) {
	fixtures, err := Load(filepath.Join("testdata", "gateway.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	fixture, _ := Find(fixtures, "defaults")
	envelope, err := fixture.Build(apigw.NewBuilder())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if envelope.Body != "{}" {
		t.Errorf("Expected body {}, got %s", envelope.Body)
	}
}

func TestCheck(t *testing.T) {
	fixtures, err := Load(filepath.Join("testdata", "gateway.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	checked := 0
	for i := range fixtures {
		result, ok := fixtures[i].Check()
		if !ok {
			continue
		}
		checked++
		if !result.Passed() {
			t.Errorf("Fixture %s: expected conforming=%v, got %v", result.Name, result.Expected, result.Conforming)
		}
	}

	if checked != 5 {
		t.Errorf("Expected 5 checked fixtures, got %d", checked)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"InvalidYAML", "fixtures: [\n"},
		{"NoFixtures", "fixtures: []\n"},
		{"MissingName", "fixtures:\n  - request: {}\n"},
		{"DuplicateNames", "fixtures:\n  - name: a\n  - name: a\n"},
		{"ExpectationWithoutResponse", "fixtures:\n  - name: a\n    expectConforming: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected parse error, got nil")
			}
		})
	}
}

func TestOptionsError(t *testing.T) {
	fixtures, err := Parse([]byte("fixtures:\n  - name: bad\n    request:\n      verb: GET\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := fixtures[0].Build(apigw.NewBuilder()); err == nil {
		t.Error("Expected unknown request key to fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte("fixtures:\n  - name: only\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture file: %v", err)
	}
	fixtures, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := fixtures[0].Check(); ok {
		t.Error("Expected fixture without expectation to be skipped")
	}
}
