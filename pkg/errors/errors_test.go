package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/genomekit/sgd/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestInvalidGeneError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.InvalidGeneError{
			Name:    "BADGENE",
			Message: "no matching gene found",
		}
		assert.Equal(t, `could not resolve gene "BADGENE": no matching gene found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidGene))
	})

	t.Run("without message", func(t *testing.T) {
		err := &pkgerrors.InvalidGeneError{Name: "BADGENE"}
		assert.Equal(t, `could not resolve gene "BADGENE"`, err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewInvalidGeneError("DUP1", 2, "gene name is ambiguous (2 matches)")
		assert.Equal(t, 2, err.Matches)
		assert.True(t, pkgerrors.IsInvalidGene(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewInvalidGeneError("BADGENE", 0, "no matching gene found")
		wrapped := errors.Join(errors.New("constructing gene"), base)
		assert.True(t, pkgerrors.IsInvalidGene(wrapped))
	})

	t.Run("not confused with validation", func(t *testing.T) {
		err := pkgerrors.NewInvalidGeneError("BADGENE", 0, "")
		assert.False(t, pkgerrors.IsValidationError(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "endpoint",
			Message: "unknown endpoint",
		}
		assert.Equal(t, "validation failed for field endpoint: unknown endpoint", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid request"}
		assert.Equal(t, "validation failed: invalid request", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("endpoint", "go_details", "not defined for class phenotype")
		assert.Contains(t, err.Error(), "endpoint")
		assert.Contains(t, err.Error(), "not defined for class phenotype")
	})
}

func TestNotFoundError(t *testing.T) {
	err := pkgerrors.NewNotFoundError("locus", "S000999999")
	assert.Equal(t, "locus with ID S000999999 not found", err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Endpoint:   "https://www.yeastgenome.org/backend/search_results",
			StatusCode: 502,
			Message:    "bad gateway",
		}
		assert.Contains(t, err.Error(), "status 502")
		assert.Contains(t, err.Error(), "bad gateway")
	})

	t.Run("without status code", func(t *testing.T) {
		err := pkgerrors.NewAPIError("search", 0, "request failed")
		assert.Equal(t, "API error from search: request failed", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("connection refused")
		err := &pkgerrors.APIError{Endpoint: "search", Message: "request failed", Err: base}
		assert.True(t, errors.Is(err, base))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with source", func(t *testing.T) {
		base := errors.New("unexpected end of JSON input")
		err := pkgerrors.WrapParse("json", "search response", base)
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "search response")
		assert.True(t, errors.Is(err, base))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapParse("json", "search response", nil))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("connection reset")
	err := pkgerrors.WrapIO("read", "response body", base)

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)
	assert.True(t, errors.Is(err, base))

	assert.NoError(t, pkgerrors.WrapIO("read", "response body", nil))
}

func TestResourceError(t *testing.T) {
	base := errors.New("missing protocol scheme")
	err := pkgerrors.WrapResource("create", "request", "GET ://bad", base)

	var resourceErr *pkgerrors.ResourceError
	require.ErrorAs(t, err, &resourceErr)
	assert.Contains(t, err.Error(), "failed to create request")
	assert.True(t, errors.Is(err, base))

	assert.NoError(t, pkgerrors.WrapResource("create", "request", "", nil))
}
