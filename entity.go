package sgd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/genomekit/sgd/internal/transport"
	"github.com/genomekit/sgd/pkg/errors"
	"github.com/genomekit/sgd/pkg/logging"
)

// entity is the shared core of all entity classes: an identifier, the
// base URL fixed at construction, and the transport used for every
// endpoint access.
type entity struct {
	class     Class
	id        string
	baseURL   string
	transport *transport.Client
}

// newEntity builds the entity core for a class and identifier.
func newEntity(class Class, id string, o *options) entity {
	return entity{
		class:     class,
		id:        id,
		baseURL:   fmt.Sprintf("%s/%s/%s", o.root, class, id),
		transport: o.transport(),
	}
}

// ID returns the entity's identifier as used in its base URL.
func (e *entity) ID() string {
	return e.id
}

// URL returns the entity's base URL.
func (e *entity) URL() string {
	return e.baseURL
}

// Class returns the entity's class.
func (e *entity) Class() Class {
	return e.class
}

// Endpoints returns the sorted endpoint names available for this entity.
func (e *entity) Endpoints() []string {
	return Endpoints(e.class)
}

// Get issues a GET against the named endpoint and returns the raw
// response. An unrecognized endpoint name fails with a ValidationError
// before any request is made; transport failures propagate unmodified,
// and non-2xx responses are returned as-is.
func (e *entity) Get(ctx context.Context, endpoint string) (*http.Response, error) {
	ep, ok := lookupEndpoint(e.class, endpoint)
	if !ok {
		return nil, &errors.ValidationError{
			Field:   "endpoint",
			Value:   endpoint,
			Message: fmt.Sprintf("unknown endpoint %q for class %s", endpoint, e.class),
		}
	}

	url := e.baseURL
	if ep.Suffix != "" {
		url += "/" + ep.Suffix
	}

	logging.Debug().
		Str("class", string(e.class)).
		Str("id", e.id).
		Str("endpoint", endpoint).
		Str("url", url).
		Msg("Requesting endpoint")

	return e.transport.Get(ctx, url)
}
