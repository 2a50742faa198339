package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("missing").StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("duplicate").StatusCode())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("denied").StatusCode())
	assert.Equal(t, http.StatusBadRequest, Validation("bad input").StatusCode())
}

func TestConstructorsFormat(t *testing.T) {
	err := NotFound("Deliverable with ID %q not found", "abc123")
	assert.EqualError(t, err, `Deliverable with ID "abc123" not found`)

	err = Conflict("Submission for %d/%d already exists. Use update instead.", 3, 2026)
	assert.EqualError(t, err, "Submission for 3/2026 already exists. Use update instead.")
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.False(t, IsNotFound(Conflict("duplicate")))
	assert.True(t, IsConflict(Conflict("duplicate")))
	assert.True(t, IsUnauthorized(Unauthorized("denied")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("missing"))
	assert.True(t, IsNotFound(wrapped))
}
