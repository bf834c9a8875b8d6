// Package fixtures loads request and response fixtures from YAML or JSON files.
package fixtures

import (
	"fmt"
	"os"

	"apigw-contract/pkg/apigw"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Fixture pairs the options of a request envelope with an optional response
// candidate and the expected outcome of validating it.
type Fixture struct {
	Name             string         `yaml:"name" validate:"required"`
	Description      string         `yaml:"description"`
	Request          map[string]any `yaml:"request"`
	Response         map[string]any `yaml:"response" validate:"required_with=ExpectConforming"`
	ExpectConforming *bool          `yaml:"expectConforming"`
}

// File is the top-level document of a fixture file
type File struct {
	Fixtures []Fixture `yaml:"fixtures" validate:"required,min=1,unique=Name,dive"`
}

var validate = validator.New()

// Load reads and validates a fixture file. JSON files are accepted as well since
// JSON is a subset of YAML.
func Load(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates fixture file contents
func Parse(data []byte) ([]Fixture, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}

	return file.Fixtures, nil
}

// Find returns the fixture with the given name
func Find(fixtures []Fixture, name string) (*Fixture, bool) {
	for i := range fixtures {
		if fixtures[i].Name == name {
			return &fixtures[i], true
		}
	}
	return nil, false
}

// Options decodes the fixture's request section
func (f *Fixture) Options() (apigw.RequestOptions, error) {
	opts, err := apigw.OptionsFromMap(f.Request)
	if err != nil {
		return apigw.RequestOptions{}, fmt.Errorf("fixture %s: %w", f.Name, err)
	}
	return opts, nil
}

// Build builds the request envelope described by the fixture
func (f *Fixture) Build(builder *apigw.Builder) (*apigw.RequestEnvelope, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}

	envelope, err := builder.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
	}
	return envelope, nil
}

// CheckResult is the outcome of validating a fixture's response section
type CheckResult struct {
	Name       string
	Conforming bool
	Expected   bool
}

// Passed reports whether the observed result matches the expectation
func (r CheckResult) Passed() bool {
	return r.Conforming == r.Expected
}

// Check validates the fixture's response. ok is false when the fixture carries
// no expectation.
func (f *Fixture) Check() (result CheckResult, ok bool) {
	if f.ExpectConforming == nil {
		return CheckResult{}, false
	}

	return CheckResult{
		Name:       f.Name,
		Conforming: apigw.IsAPIGatewayResponse(f.Response),
		Expected:   *f.ExpectConforming,
	}, true
}
