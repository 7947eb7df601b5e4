package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/genomekit/sgd/pkg/errors"
)

// DecodeResponse decodes a JSON response into the target structure.
// Unlike raw endpoint accesses, callers of this helper never see the
// response object, so a non-2xx status is surfaced as an APIError.
func DecodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}

	return nil
}
