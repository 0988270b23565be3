package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPrecision = 3

// config is the contents of a configuration file.
type config struct {
	Precision int `yaml:"precision"`
	// Var is the value of the variable, or nil if expressions may not use it.
	Var   *float64 `yaml:"var"`
	Debug bool     `yaml:"debug"`
	RPN   bool     `yaml:"rpn"`
}

func defaultConfig() config {
	return config{Precision: defaultPrecision}
}

// loadConfig reads a YAML configuration file. Fields not in the file keep
// their defaults. Unknown fields are an error.
func loadConfig(name string) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	cfg := defaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("reading config %s: %w", name, err)
	}
	return cfg, nil
}
