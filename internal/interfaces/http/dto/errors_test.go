package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodePersistenceConflict, http.StatusConflict},
		{ErrCodeGenerationInProgress, http.StatusConflict},
		{ErrCodeAntiforgeryToken, http.StatusForbidden},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{"SOMETHING_UNMAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodePersistenceConflict, NormalizeErrorCode("PERSISTENCE_CONFLICT"))
	assert.Equal(t, ErrCodeConcurrencyConflict, NormalizeErrorCode("CONCURRENCY_CONFLICT"))
	assert.Equal(t, "ERR_CUSTOM", NormalizeErrorCode("ERR_CUSTOM"))
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	t.Run("exact multiple reports one extra page", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta(nil, 100, 1, 50)
		assert.Equal(t, 3, resp.Meta.TotalPages)
	})

	t.Run("empty listing reports one page", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta(nil, 0, 1, 50)
		assert.Equal(t, 1, resp.Meta.TotalPages)
	})

	t.Run("partial last page", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta(nil, 120, 2, 50)
		assert.Equal(t, 3, resp.Meta.TotalPages)
	})
}
