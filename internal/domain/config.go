package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ConfigFileName is the project-level configuration file.
const ConfigFileName = ".layercheck.yaml"

// DefaultTuistBinary is used when nothing else names the export tool.
const DefaultTuistBinary = "tuist"

// ProjectConfig holds project-level configuration loaded from .layercheck.yaml.
type ProjectConfig struct {
	Graph       string      `yaml:"graph"        json:"graph,omitempty"        validate:"omitempty,endswith=.json"`
	Tuist       TuistConfig `yaml:"tuist"        json:"tuist"`
	History     bool        `yaml:"history"      json:"history"`
	MetricsFile string      `yaml:"metrics_file" json:"metrics_file,omitempty" validate:"omitempty,endswith=.prom"`
}

// TuistConfig configures the external graph export command.
type TuistConfig struct {
	Binary  string        `yaml:"binary"  json:"binary"            validate:"required"`
	Timeout time.Duration `yaml:"timeout" json:"timeout,omitempty" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Tuist: TuistConfig{Binary: DefaultTuistBinary},
	}
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key so messages match what users wrote.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s must not be empty", field)
	case "endswith":
		return fmt.Errorf("%s %q must end with %s", field, fe.Value(), fe.Param())
	case "gte":
		return fmt.Errorf("%s must not be negative (got %v)", field, fe.Value())
	default:
		return fmt.Errorf("%s failed %q check", field, fe.Tag())
	}
}
