package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Configuration is the converter's externally-tunable behavior (spec.md
// §6). Only assertionMode and suppressTypeNames are acted on. libraryId
// and annotate have no effect in this port — there is no host code
// emitter to import the runtime into, and the demo module is converted
// whatever annotate says — but both fields round-trip so a YAML file
// written against the spec's full shape still loads without error.
type Configuration struct {
	AssertionMode     string   `yaml:"assertionMode"`
	Annotate          string   `yaml:"annotate"`
	LibraryID         string   `yaml:"libraryId"`
	SuppressTypeNames []string `yaml:"suppressTypeNames"`
}

func defaultConfiguration() Configuration {
	return Configuration{
		AssertionMode: "assert",
		Annotate:      "on",
		LibraryID:     "runtype",
	}
}

// loadConfiguration reads a Configuration from a YAML file, the way
// ailang and glint load their own config (SPEC_FULL.md's DOMAIN STACK
// table). An empty path is not an error: the caller runs with defaults.
// A path that cannot be read or parsed is an error.
func loadConfiguration(path string) (Configuration, error) {
	cfg := defaultConfiguration()
	if path == "" {
		return cfg, nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read configuration %q", path)
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse configuration %q", path)
	}
	return cfg, nil
}

func (c Configuration) mode() string {
	switch c.AssertionMode {
	case "off", "warn", "assert":
		return c.AssertionMode
	default:
		return "assert"
	}
}
