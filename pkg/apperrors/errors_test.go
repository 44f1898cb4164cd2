package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("plain error is unknown", func(t *testing.T) {
		assert.Equal(t, CodeUnknown, CodeOf(cause))
	})

	t.Run("wrapped app error keeps its code", func(t *testing.T) {
		err := fmt.Errorf("saving secret: %w", Store("failed to save secret", cause))
		assert.Equal(t, CodeStore, CodeOf(err))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("sentinels match with errors.Is", func(t *testing.T) {
		err := fmt.Errorf("reading: %w", ErrNotFriends)
		assert.True(t, errors.Is(err, ErrNotFriends))
		assert.True(t, Is(err, CodeForbidden))
		assert.False(t, Is(err, CodeNotFound))
	})
}

func TestMessageOfHidesCause(t *testing.T) {
	err := Store("failed to load secret", errors.New("pq: password authentication failed"))

	assert.Equal(t, "failed to load secret", MessageOf(err))
	assert.Contains(t, err.Error(), "pq: password authentication failed")
	assert.Equal(t, "internal server error", MessageOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeNotFound:        http.StatusNotFound,
		CodeForbidden:       http.StatusForbidden,
		CodeSelfRequest:     http.StatusBadRequest,
		CodeInvalidArgument: http.StatusBadRequest,
		CodeConflict:        http.StatusConflict,
		CodeUnauthorized:    http.StatusUnauthorized,
		CodeRateLimited:     http.StatusTooManyRequests,
		CodeStore:           http.StatusInternalServerError,
		CodeProvider:        http.StatusInternalServerError,
		CodeUnknown:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), string(code))
	}
}
