package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"apigw-contract/internal/config"
	"apigw-contract/internal/fixtures"
	"apigw-contract/pkg/apigw"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		action       = flag.String("action", "build", "Action: build, validate, check")
		fixturePath  = flag.String("fixtures", "", "Fixture file (YAML or JSON)")
		fixtureName  = flag.String("name", "", "Only use the fixture with this name")
		responsePath = flag.String("response", "-", "Response JSON file to validate, - for stdin")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := config.NewLogger(cfg.Log)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.SetOutput(os.Stderr)

	app := &cli{
		cfg:     cfg,
		logger:  logger,
		builder: apigw.NewBuilder(apigw.WithRequestTimeEpoch(cfg.Envelope.RequestTimeEpoch)),
		out:     os.Stdout,
	}

	switch *action {
	case "build":
		err = app.build(*fixturePath, *fixtureName)
	case "validate":
		err = app.validate(*responsePath)
	case "check":
		err = app.check(*fixturePath, *fixtureName)
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: build, validate, check")
	}

	if err != nil {
		logger.WithError(err).Fatal("Command failed")
	}
}

type cli struct {
	cfg     *config.Config
	logger  *logrus.Logger
	builder *apigw.Builder
	out     io.Writer
}

// build prints an envelope for every selected fixture, or a default envelope
// when no fixture file is given.
func (c *cli) build(path, name string) error {
	if path == "" {
		envelope, err := c.builder.Build(apigw.RequestOptions{})
		if err != nil {
			return err
		}
		return c.print(envelope)
	}

	selected, err := selectFixtures(path, name)
	if err != nil {
		return err
	}

	for i := range selected {
		envelope, err := selected[i].Build(c.builder)
		if err != nil {
			return err
		}
		c.logger.WithField("fixture", selected[i].Name).Debug("Built request envelope")
		if err := c.print(envelope); err != nil {
			return err
		}
	}

	return nil
}

// validate checks a response document read from path
func (c *cli) validate(path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	conforming := apigw.IsAPIGatewayResponse(data)
	c.logger.WithFields(logrus.Fields{
		"source":     path,
		"conforming": conforming,
	}).Info("Validated response")

	if err := c.print(map[string]bool{"conforming": conforming}); err != nil {
		return err
	}
	if !conforming {
		return fmt.Errorf("response does not satisfy the gateway response contract")
	}
	return nil
}

// check runs every fixture expectation and fails if any does not hold
func (c *cli) check(path, name string) error {
	selected, err := selectFixtures(path, name)
	if err != nil {
		return err
	}

	failed := 0
	for i := range selected {
		result, ok := selected[i].Check()
		if !ok {
			continue
		}

		fields := logrus.Fields{
			"fixture":    result.Name,
			"conforming": result.Conforming,
			"expected":   result.Expected,
		}
		if result.Passed() {
			c.logger.WithFields(fields).Info("Fixture passed")
		} else {
			failed++
			c.logger.WithFields(fields).Error("Fixture failed")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d fixture(s) failed", failed)
	}
	return nil
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetEscapeHTML(false)
	if c.cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func selectFixtures(path, name string) ([]fixtures.Fixture, error) {
	if path == "" {
		return nil, fmt.Errorf("a fixture file is required")
	}

	all, err := fixtures.Load(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return all, nil
	}

	fixture, ok := fixtures.Find(all, name)
	if !ok {
		return nil, fmt.Errorf("fixture %q not found in %s", name, path)
	}
	return []fixtures.Fixture{*fixture}, nil
}
