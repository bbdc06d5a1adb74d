package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ING_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("ING_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped NotFound ServiceError",
			err:     fmt.Errorf("wrap: %w", NewNotFoundError("LOG_1002", "log source not found", nil)),
			wantErr: NewNotFoundError("LOG_1002", "log source not found", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ING_9000", nil)),
			wantErr: NewInternalError("ING_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	cause := errors.New("root cause")

	tests := []struct {
		name         string
		err          *ServiceError
		wantCategory string
		wantStatus   int
		wantInternal bool
	}{
		{"invalid argument", NewInvalidArgumentError("ING_1000", "bad", cause), "invalid_argument", 400, false},
		{"resource conflict", NewResourceConflictError("LOG_1001", "exists", cause), "resource_conflict", 409, false},
		{"not found", NewNotFoundError("LOG_1002", "missing", cause), "not_found", 404, false},
		{"internal", NewInternalError("ING_9000", cause), "internal", 500, true},
		{"panic", NewInternalErrorPanic(cause), "internal", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.ErrorIs(t, tt.err, cause)
			assert.Contains(t, tt.err.Error(), tt.err.Code)
		})
	}
}
