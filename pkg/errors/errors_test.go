package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(ErrMisconfigured))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(ErrStore))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(fmt.Errorf("plain error")))
}

func TestWithMessageDoesNotMutateSentinel(t *testing.T) {
	err := ErrValidation.WithMessage("'content' is required")
	assert.Equal(t, "'content' is required", err.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}

func TestWithDetailDoesNotMutateSentinel(t *testing.T) {
	err := ErrStore.WithDetail("status", 502)
	assert.Equal(t, 502, err.Details["status"])
	assert.Empty(t, ErrStore.Details)
}

func TestToErrorResponse(t *testing.T) {
	resp := ToErrorResponse(ErrValidation.WithMessage("'content' is required"))
	assert.Equal(t, "'content' is required", resp["error"])
	assert.NotContains(t, resp, "details")

	resp = ToErrorResponse(ErrStore.WithDetail("code", "restricted"))
	assert.Contains(t, resp, "details")
}

func TestIsHelpers(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrValidation.WithMessage("bad"))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsMisconfigured(wrapped))
	assert.True(t, IsMisconfigured(ErrMisconfigured))
}
