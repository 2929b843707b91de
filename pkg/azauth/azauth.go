// Package azauth adapts Azure identity credentials into the opaque bearer
// token providers the framework clients consume.
package azauth

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
)

// DefaultScope is the token scope used when none is given.
const DefaultScope = "api://trapi/.default"

// BearerTokenProvider adapts the credential into a provider that returns a
// bearer token for the given scopes. The credential caches and refreshes
// tokens internally, so the provider is safe to call per request.
func BearerTokenProvider(cred azcore.TokenCredential, scopes ...string) frameworks.TokenProvider {
	if len(scopes) == 0 {
		scopes = []string{DefaultScope}
	}
	return func(ctx context.Context) (string, error) {
		token, err := cred.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: scopes,
		})
		if err != nil {
			return "", errors.Wrap(err, "get azure token")
		}
		return token.Token, nil
	}
}

// CLITokenProvider returns a provider backed by the Azure CLI login.
func CLITokenProvider(scopes ...string) (frameworks.TokenProvider, error) {
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, errors.Wrap(err, "azure cli credential")
	}
	return BearerTokenProvider(cred, scopes...), nil
}

// DefaultTokenProvider returns a provider backed by the default Azure
// credential chain: environment variables, managed identity, az login.
func DefaultTokenProvider(scopes ...string) (frameworks.TokenProvider, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, errors.Wrap(err, "azure default credential")
	}
	return BearerTokenProvider(cred, scopes...), nil
}
