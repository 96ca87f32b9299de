package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("token signature is invalid")

	tests := []struct {
		name       string
		err        error
		wantMsg    string
		wantText   string
		wantType   Type
		wantStatus int
		wantCause  error
	}{
		{
			name:       "server",
			err:        NewServer(cause),
			wantMsg:    "Internal server error",
			wantText:   cause.Error(),
			wantType:   TypeServer,
			wantStatus: http.StatusInternalServerError,
			wantCause:  cause,
		},
		{
			name:       "business unauthorized",
			err:        NewBusiness("Authorization failed", CodeUnauthorized),
			wantMsg:    "Authorization failed",
			wantText:   "Authorization failed",
			wantType:   TypeBusiness,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unauthorized keeps cause message",
			err:        NewUnauthorized(cause),
			wantMsg:    cause.Error(),
			wantText:   cause.Error(),
			wantType:   TypeBusiness,
			wantStatus: http.StatusUnauthorized,
			wantCause:  cause,
		},
		{
			name:       "invalid format default",
			err:        NewInvalidFormat(),
			wantMsg:    "Invalid request body",
			wantText:   "Invalid request body",
			wantType:   TypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid format custom",
			err:        NewInvalidFormat("body must be a JSON object"),
			wantMsg:    "body must be a JSON object",
			wantText:   "body must be a JSON object",
			wantType:   TypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "payload too large",
			err:        NewPayloadTooLarge(),
			wantMsg:    "Request body too large",
			wantText:   "Request body too large",
			wantType:   TypeValidation,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.ErrorAs(t, tt.err, &gerr)

			assert.Equal(t, tt.wantMsg, gerr.Msg())
			assert.Equal(t, tt.wantText, gerr.Error())
			assert.Equal(t, tt.wantType, gerr.Type())
			assert.Equal(t, tt.wantStatus, gerr.StatusCode())
			assert.Contains(t, gerr.String(), gerr.Code().String())
			if tt.wantCause != nil {
				assert.ErrorIs(t, tt.err, tt.wantCause)
			}
		})
	}
}
