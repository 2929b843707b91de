package clientfactory

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/x/configloader"
	"github.com/go-playground/validator/v10"
)

// Config is the canonical, framework-agnostic description of an Azure OpenAI
// backed model. The factory renames and reshapes these fields per framework;
// see Factory.CreateClient.
type Config struct {
	// Endpoint specifies the Azure OpenAI resource URL
	Endpoint string `json:"endpoint" yaml:"endpoint" validate:"required"`
	// Deployment specifies the deployment requests are routed to
	Deployment string `json:"deployment" yaml:"deployment" validate:"required"`
	// ModelName specifies the name of the deployed model
	ModelName string `json:"model_name" yaml:"model_name" validate:"required"`
	// APIVersion specifies the Azure OpenAI API version, e.g. 2024-10-21
	APIVersion string `json:"api_version" yaml:"api_version" validate:"required"`
	// Temperature specifies the default sampling temperature.
	// The zero value is meaningful and passed through as is.
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// TokenProvider supplies bearer tokens for the endpoint. It is handed to
	// clients as an opaque callable and never invoked by the factory itself.
	// It cannot be loaded from file and must be set by the caller.
	TokenProvider frameworks.TokenProvider `json:"-" yaml:"-" validate:"required"`
}

// Validate checks that all connection fields and the token provider are set.
func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// LoadConfig from file. The token provider is not part of the file format
// and must be set on the returned config before use.
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
