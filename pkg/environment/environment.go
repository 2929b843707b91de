// Package environment loads the process configuration of the agent runtime
// from a .env file and environment variables, and turns it into the
// canonical client configuration.
package environment

import (
	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/azauth"
	"github.com/effective-security/safeagents/pkg/clientfactory"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/joho/godotenv"
)

// Setup describes the environment the agent system runs in.
type Setup struct {
	// AzureEndpoint specifies the Azure OpenAI resource URL
	AzureEndpoint string `env:"AZURE_ENDPOINT"`
	// AzureDeployment specifies the deployment requests are routed to
	AzureDeployment string `env:"AZURE_DEPLOYMENT"`
	// AzureModelName specifies the name of the deployed model
	AzureModelName string `env:"AZURE_MODEL_NAME"`
	// AzureAPIVersion specifies the Azure OpenAI API version
	AzureAPIVersion string `env:"AZURE_API_VERSION"`
	// Framework selects the agent framework clients are shaped for
	Framework string `env:"FRAMEWORK"`
	// ExpType names the experiment variant to run
	ExpType string `env:"EXP_TYPE"`
	// TokenScope overrides the token scope requested from Azure identity
	TokenScope string `env:"AZURE_TOKEN_SCOPE"`
}

// Load reads the .env file, if present, and parses the environment.
func Load() (*Setup, error) {
	// missing .env is not an error, the process environment still applies
	_ = godotenv.Load()

	s := new(Setup)
	err := env.Parse(s)
	if err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return s, nil
}

// ParseFramework returns the framework selected by the environment.
func (s *Setup) ParseFramework() (frameworks.Framework, error) {
	return frameworks.ParseFramework(s.Framework)
}

// ClientConfig builds the canonical client configuration from the
// environment, with bearer tokens supplied by the Azure CLI login.
func (s *Setup) ClientConfig() (*clientfactory.Config, error) {
	var scopes []string
	if s.TokenScope != "" {
		scopes = append(scopes, s.TokenScope)
	}
	tp, err := azauth.CLITokenProvider(scopes...)
	if err != nil {
		return nil, err
	}

	return &clientfactory.Config{
		Endpoint:      s.AzureEndpoint,
		Deployment:    s.AzureDeployment,
		ModelName:     s.AzureModelName,
		APIVersion:    s.AzureAPIVersion,
		TokenProvider: tp,
	}, nil
}
