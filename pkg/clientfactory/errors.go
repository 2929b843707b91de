package clientfactory

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
)

// ErrUnsupportedFramework is returned by CreateClient for a framework
// outside the supported set, before the configuration is examined.
// BindTools does not share this strictness; see Factory.BindTools.
var ErrUnsupportedFramework = errors.New("unsupported framework")

// ClientConstructionError reports a failure to turn a configuration into a
// framework client, either because the configuration is invalid or because
// the underlying constructor rejected it.
type ClientConstructionError struct {
	Framework frameworks.Framework
	Err       error
}

func (e *ClientConstructionError) Error() string {
	return fmt.Sprintf("failed to create %s client: %v", e.Framework, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ClientConstructionError) Unwrap() error {
	return e.Err
}

func constructionError(framework frameworks.Framework, err error) error {
	return &ClientConstructionError{
		Framework: framework,
		Err:       err,
	}
}
